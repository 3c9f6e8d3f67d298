// Package session provides ceremony-level ergonomics on top of dkg,
// derive, and ibtd: a one-call local DKG ceremony runner for tests and
// single-process setups, and a concurrency-safe DecryptionSession that
// collects decryption shares from group members and recombines them
// exactly once.
//
// # DKG Ceremony
//
// RunDKGCeremony drives dkg.Coordinator through init, share distribution,
// verification, and finalization for all n participants in one call:
//
//	mpk, shares, err := session.RunDKGCeremony(5, 3)
//
// Running the real protocol over a network, where each DKGC node only
// ever sees its own state and messages addressed to it, is out of scope
// for this module; RunDKGCeremony exists for callers that already have
// every participant's state available in one process.
//
// # Group Key Derivation And Decryption
//
// Once a group's private shares have been produced by derive.Derive, a
// DecryptionSession collects decryption shares from group members and
// recombines the plaintext exactly once, the same way a signing session
// guards against reusing consumed state:
//
//	sess := session.NewDecryptionSession(ciphertext, threshold)
//	sess.AddShare(shareFromMember1)
//	sess.AddShare(shareFromMember2)
//	plaintext, err := sess.Decrypt()
//
// # Transport Agnostic
//
// This package does not handle network communication. Distributing DKG
// messages and decryption shares between participants is the caller's
// responsibility; this package only manages protocol state.
package session
