package ibtd

import (
	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
	"github.com/obiria/dibtd/threshold"
	"github.com/obiria/dibtd/types"
)

// Encrypt produces a ciphertext for message under groupID, using mpk as
// the system's master public key. message may be any length; it is not
// wrapped in an AEAD envelope (see the package doc).
func Encrypt(message []byte, groupID string, mpk *types.MasterPublicKey) (*types.Ciphertext, error) {
	u, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	idHash := curve.H1([]byte(groupID))
	var gammaScaled curve.Point
	gammaScaled.ScalarMult(&idHash, &mpk.Gamma)

	var combined curve.Point
	combined.Add(&mpk.Y, &gammaScaled)

	var delta curve.Point
	delta.ScalarMult(&u, &combined)

	var d curve.Point
	d.ScalarBaseMult(&u)

	deltaBytes := delta.Bytes()
	rInput := append(append([]byte{}, message...), deltaBytes[:]...)
	r := curve.H1(rInput)

	var e curve.Point
	e.ScalarBaseMult(&r)

	theta := curve.H2(&delta)
	thetaPadded := curve.PadOrTruncate(theta[:], len(message))

	eBytes := e.Bytes()
	omegaInput := append(append([]byte{}, eBytes[:]...), theta[:]...)
	omega := curve.H2Bytes(omegaInput)
	omegaPadded := curve.PadOrTruncate(omega[:], len(message))

	x := curve.XOR(thetaPadded, message)
	f := curve.XOR(omegaPadded, x)

	h3 := curve.H3(&d, &e, f)
	var rH3 curve.Scalar
	rH3.Mul(&r, &h3)

	var deltaScalar curve.Scalar
	deltaScalar.Add(&u, &rH3)

	return &types.Ciphertext{D: d, E: e, F: f, Delta: deltaScalar}, nil
}

// ShareDecrypt verifies ciphertext's integrity tag and produces this
// member's decryption share Lambda_i = psi_i * D. Returns
// errs.InvalidCiphertext if the integrity check fails.
func ShareDecrypt(ciphertext *types.Ciphertext, share *types.PrivateKeyShare) (*types.DecryptionShare, error) {
	var deltaPoint curve.Point
	deltaPoint.ScalarBaseMult(&ciphertext.Delta)

	h3 := curve.H3(&ciphertext.D, &ciphertext.E, ciphertext.F)
	var eScaled curve.Point
	eScaled.ScalarMult(&h3, &ciphertext.E)

	var expected curve.Point
	expected.Add(&ciphertext.D, &eScaled)

	if !deltaPoint.Equal(&expected) {
		return nil, errs.InvalidCiphertext
	}

	var lambda curve.Point
	lambda.ScalarMult(&share.Psi, &ciphertext.D)

	return &types.DecryptionShare{Index: share.Index, Lambda: lambda}, nil
}

// Decrypt recombines a threshold-sized quorum of decryption shares and
// recovers the plaintext, self-verifying the result by recomputing E and
// comparing it against the ciphertext. Returns errs.InsufficientShares if
// fewer than threshold shares are given, or errs.DecryptionFailed if the
// recombined plaintext does not reproduce the ciphertext's E value.
func Decrypt(ciphertext *types.Ciphertext, shares []types.DecryptionShare, thresholdK int) ([]byte, error) {
	if len(shares) < thresholdK {
		return nil, &errs.InsufficientShares{Got: len(shares), Need: thresholdK}
	}

	indexed := make([]threshold.IndexedPoint, thresholdK)
	for i := 0; i < thresholdK; i++ {
		indexed[i] = threshold.IndexedPoint{Index: shares[i].Index, Value: shares[i].Lambda}
	}

	delta, err := threshold.ReconstructPoint(indexed, thresholdK)
	if err != nil {
		return nil, err
	}

	theta := curve.H2(&delta)
	thetaPadded := curve.PadOrTruncate(theta[:], len(ciphertext.F))

	eBytes := ciphertext.E.Bytes()
	omegaInput := append(append([]byte{}, eBytes[:]...), theta[:]...)
	omega := curve.H2Bytes(omegaInput)
	omegaPadded := curve.PadOrTruncate(omega[:], len(ciphertext.F))

	x := curve.XOR(ciphertext.F, omegaPadded)
	message := curve.XOR(x, thetaPadded)

	deltaBytes := delta.Bytes()
	rInput := append(append([]byte{}, message...), deltaBytes[:]...)
	r := curve.H1(rInput)

	var expectedE curve.Point
	expectedE.ScalarBaseMult(&r)

	if !expectedE.Equal(&ciphertext.E) {
		return nil, errs.DecryptionFailed
	}

	return message, nil
}
