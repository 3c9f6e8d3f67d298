// Package ibtd implements identity-based threshold decryption: encrypting
// a message under a group identity string and the system's master public
// key, producing per-member decryption shares, and recombining a quorum
// of shares back into the plaintext.
//
// Encrypt treats the message as an opaque byte string of any length; it
// does not wrap it in an AEAD envelope. Callers that need confidentiality
// against a passive observer of Delta's XOR mask, or authenticity beyond
// the scheme's own integrity check, are expected to layer that on top
// (for example AES-256-GCM with a 32-byte key, 12-byte nonce, 16-byte
// tag), exactly the boundary types.Ciphertext is built to sit underneath.
package ibtd
