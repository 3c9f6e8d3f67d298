package curve

import "crypto/sha256"

// H1 hashes arbitrary data to a scalar in Z_q, domain-separated with the
// prefix "H1:". Used for identity hashing and for deriving the per-message
// nonce r = H1(m || Delta).
func H1(data []byte) Scalar {
	h := sha256.New()
	h.Write([]byte("H1:"))
	h.Write(data)
	return ScalarFromBytes(h.Sum(nil))
}

// H2 hashes a group element to a 32-byte mask, domain-separated with the
// prefix "H2:". Used to derive Theta = H2(Delta).
func H2(p *Point) [32]byte {
	b := p.Bytes()
	return H2Bytes(b[:])
}

// H2Bytes hashes arbitrary bytes to a 32-byte mask under the same "H2:"
// domain tag as H2. Used to derive Omega = H2(E || Theta); sharing H2's
// tag with a point-hash overload is intentional, matching the scheme's
// single H2 function defined over both G and {0,1}*.
func H2Bytes(data []byte) [32]byte {
	h := sha256.New()
	h.Write([]byte("H2:"))
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// H3 hashes two group elements and a byte string to a scalar in Z_q,
// domain-separated with the prefix "H3:". Used to bind a ciphertext's
// delta scalar to D, E, and F.
func H3(p1, p2 *Point, data []byte) Scalar {
	h := sha256.New()
	h.Write([]byte("H3:"))
	b1 := p1.Bytes()
	b2 := p2.Bytes()
	h.Write(b1[:])
	h.Write(b2[:])
	h.Write(data)
	return ScalarFromBytes(h.Sum(nil))
}

// XOR returns a XOR b, truncated to the shorter of the two inputs' length.
func XOR(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// PadOrTruncate returns data resized to exactly n bytes: truncated if
// longer, zero-padded on the right if shorter.
func PadOrTruncate(data []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, data)
	return out
}
