// Package schnorr implements a Schnorr proof of knowledge of a discrete
// log, bound to a caller-supplied context string. It proves knowledge of
// the private share psi_i behind a verification key psi_i * P without
// revealing psi_i. The transcript does not include a decryption share, so
// a proof does not show that a given Lambda_i equals psi_i * D.
package schnorr

import (
	"crypto/sha256"

	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
	"github.com/obiria/dibtd/types"
)

// Prove generates a proof of knowledge of secret, bound to context.
// The challenge is computed over context and the commitment point only;
// it does not include the verification key, matching the simplified
// transcript this scheme commits to.
func Prove(secret *curve.Scalar, context string) (*types.Proof, error) {
	k, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	var r curve.Point
	r.ScalarBaseMult(&k)

	c := challenge(context, &r)

	var sc curve.Scalar
	sc.Mul(secret, &c)

	var mu curve.Scalar
	mu.Add(&k, &sc)

	return &types.Proof{R: r, Mu: mu}, nil
}

// Verify checks that proof attests knowledge of the discrete log of
// verificationKey under context. Returns errs.InvalidProof if it does not.
func Verify(proof *types.Proof, verificationKey *curve.Point, context string) error {
	c := challenge(context, &proof.R)

	var muPoint curve.Point
	muPoint.ScalarBaseMult(&proof.Mu)

	var cVK curve.Point
	cVK.ScalarMult(&c, verificationKey)

	var rhs curve.Point
	rhs.Add(&proof.R, &cVK)

	if !muPoint.Equal(&rhs) {
		return errs.InvalidProof
	}
	return nil
}

// BatchVerify verifies N (proof, verification key) pairs under one
// context in a single call. It returns errs.InvalidProof at the first
// failing pair, or nil if every pair verifies.
func BatchVerify(proofs []*types.Proof, verificationKeys []*curve.Point, context string) error {
	if len(proofs) != len(verificationKeys) {
		return errs.InvalidProof
	}
	for i := range proofs {
		if err := Verify(proofs[i], verificationKeys[i], context); err != nil {
			return err
		}
	}
	return nil
}

// challenge computes c = H(context || compressed(R)) as a scalar, without
// the "H1:"/"H2:"/"H3:" domain tags curve's named hashes use — the Schnorr
// transcript has its own implicit domain (the context string itself).
func challenge(context string, r *curve.Point) curve.Scalar {
	h := sha256.New()
	h.Write([]byte(context))
	rBytes := r.Bytes()
	h.Write(rBytes[:])
	return curve.ScalarFromBytes(h.Sum(nil))
}
