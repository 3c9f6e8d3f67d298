// Package errs defines the tagged error values returned by the dibtd
// packages. Errors that carry data (InvalidThreshold, InsufficientShares,
// DKGProtocolFailed, SerializationError) are concrete struct types matched
// with errors.As; the others are distinct sentinel values matched with
// errors.Is, so callers never need to parse strings.
package errs

import "fmt"

// InvalidThreshold is returned when a threshold t and participant count n
// fail the constraint 0 < t <= n.
type InvalidThreshold struct {
	T, N int
}

func (e *InvalidThreshold) Error() string {
	return fmt.Sprintf("invalid threshold parameters: t=%d, n=%d", e.T, e.N)
}

// InsufficientShares is returned when fewer shares were supplied than the
// threshold requires for reconstruction.
type InsufficientShares struct {
	Got, Need int
}

func (e *InsufficientShares) Error() string {
	return fmt.Sprintf("insufficient shares for reconstruction: got %d, need %d", e.Got, e.Need)
}

// InvalidShareVerification tags a received DKG share that fails
// Feldman verification against the sender's published commitments.
// dkg.Coordinator.VerifyShares reports that case as a false result and
// does not return this error.
var InvalidShareVerification = sentinel("invalid share verification")

// InvalidProof is returned when a Schnorr proof fails to verify.
var InvalidProof = sentinel("invalid proof")

// InvalidCiphertext is returned when a ciphertext fails its integrity
// check (delta*P != D + H3(D,E,F)*E).
var InvalidCiphertext = sentinel("invalid ciphertext")

// DecryptionFailed is returned when recombined decryption shares do not
// reproduce a plaintext that is consistent with the ciphertext's E value.
var DecryptionFailed = sentinel("decryption failed")

// KeyGenerationFailed is returned when a DKG ceremony cannot produce a
// master keypair.
var KeyGenerationFailed = sentinel("key generation failed")

// InvalidGroupIdentity is returned when a GroupIdentity fails validation
// (empty id, or threshold/member counts out of range).
var InvalidGroupIdentity = sentinel("invalid group identity")

// DKGProtocolFailed wraps a free-form reason for a DKG protocol failure
// that doesn't warrant its own tagged type (missing participant, index
// out of range, and similar state-machine violations).
type DKGProtocolFailed struct {
	Reason string
}

func (e *DKGProtocolFailed) Error() string {
	return fmt.Sprintf("DKG protocol failed: %s", e.Reason)
}

// SerializationError wraps a free-form reason for a wire-format decode
// or encode failure.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s", e.Reason)
}

type sentinelError string

func sentinel(s string) error { return sentinelError(s) }

func (e sentinelError) Error() string { return string(e) }
