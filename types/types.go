// Package types holds the data shapes shared across the dibtd packages:
// system parameters, master key material, group identities, and the
// wire-level ciphertext and proof structures.
package types

import (
	"fmt"

	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
)

// SystemParams describes a (t,n) DKGC threshold: n distributed key
// generation centers, any t of which can reconstruct the master secret.
type SystemParams struct {
	N int // total DKGC participants
	T int // reconstruction threshold
}

// Validate checks that 0 < T <= N.
func (p SystemParams) Validate() error {
	if p.T <= 0 || p.T > p.N {
		return &errs.InvalidThreshold{T: p.T, N: p.N}
	}
	return nil
}

// MasterPublicKey is the system-wide public key produced by the DKG
// ceremony: Y and Gamma are the two aggregated commitments the identity
// hash folds together at encryption time.
type MasterPublicKey struct {
	Y      curve.Point
	Gamma  curve.Point
	Params SystemParams
}

// MasterSecretShare is one DKGC's share of the dual Shamir sharing that
// produced the master keypair: s_i shares the Y secret, z_i shares the
// Gamma secret.
type MasterSecretShare struct {
	Index int
	SI    curve.Scalar
	ZI    curve.Scalar
}

// GroupIdentity names a group of members entitled to decrypt records
// encrypted under it, and the (K,M) threshold their own private shares
// are sharded under.
type GroupIdentity struct {
	ID      string
	K       int // decryption threshold
	Members int // total group members
}

// Validate checks that the identity string is non-empty and 0 < K <= Members.
func (g GroupIdentity) Validate() error {
	if g.ID == "" {
		return errs.InvalidGroupIdentity
	}
	if g.K <= 0 || g.K > g.Members {
		return errs.InvalidGroupIdentity
	}
	return nil
}

// PrivateKeyShare is one group member's share of the group secret,
// produced by distributed key derivation. VerificationKey = psi_i * P
// lets holders check a share without learning psi_i of any other member.
type PrivateKeyShare struct {
	Index           int
	Psi             curve.Scalar
	VerificationKey curve.Point
}

// Proof is a Schnorr proof of knowledge of the discrete log behind a
// verification key, bound to a caller-supplied context string.
type Proof struct {
	R  curve.Point
	Mu curve.Scalar
}

// DecryptionShare is one group member's contribution toward recovering a
// ciphertext's plaintext: Lambda = psi_i * D.
type DecryptionShare struct {
	Index  int
	Lambda curve.Point
}

// Ciphertext is the output of Encrypt and the input to ShareDecrypt and
// Decrypt. See MarshalBinary for the wire encoding.
type Ciphertext struct {
	D     curve.Point
	E     curve.Point
	F     []byte
	Delta curve.Scalar
}

// MarshalBinary encodes c as compressed(D) || compressed(E) ||
// uint32-BE(len(F)) || F || 32-byte-BE(delta).
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	dBytes := c.D.Bytes()
	eBytes := c.E.Bytes()
	deltaBytes := c.Delta.Bytes()

	out := make([]byte, 0, 33+33+4+len(c.F)+32)
	out = append(out, dBytes[:]...)
	out = append(out, eBytes[:]...)
	out = append(out, byte(len(c.F)>>24), byte(len(c.F)>>16), byte(len(c.F)>>8), byte(len(c.F)))
	out = append(out, c.F...)
	out = append(out, deltaBytes[:]...)
	return out, nil
}

// UnmarshalCiphertext decodes the wire format produced by
// Ciphertext.MarshalBinary.
func UnmarshalCiphertext(data []byte) (*Ciphertext, error) {
	if len(data) < 33+33+4 {
		return nil, &errs.SerializationError{Reason: "ciphertext too short"}
	}

	var c Ciphertext
	if err := c.D.SetBytes(data[0:33]); err != nil {
		return nil, &errs.SerializationError{Reason: fmt.Sprintf("decoding D: %v", err)}
	}
	if err := c.E.SetBytes(data[33:66]); err != nil {
		return nil, &errs.SerializationError{Reason: fmt.Sprintf("decoding E: %v", err)}
	}

	fLen := int(data[66])<<24 | int(data[67])<<16 | int(data[68])<<8 | int(data[69])
	rest := data[70:]
	if len(rest) < fLen+32 {
		return nil, &errs.SerializationError{Reason: "ciphertext truncated"}
	}

	c.F = make([]byte, fLen)
	copy(c.F, rest[:fLen])
	c.Delta = curve.ScalarFromBytes(rest[fLen : fLen+32])

	return &c, nil
}
