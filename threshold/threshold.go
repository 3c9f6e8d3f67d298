package threshold

import (
	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
)

// IndexedScalar pairs a participant index with its Shamir share.
type IndexedScalar struct {
	Index int
	Value curve.Scalar
}

// IndexedPoint pairs a participant index with its exponentiated share,
// i.e. Value = share_i * Base for some implicit base point.
type IndexedPoint struct {
	Index int
	Value curve.Point
}

// ReconstructScalar recovers f(0) from a threshold-sized subset of shares
// via Lagrange interpolation. Only the first threshold entries of shares
// are used.
func ReconstructScalar(shares []IndexedScalar, threshold int) (curve.Scalar, error) {
	if len(shares) < threshold {
		return curve.Scalar{}, &errs.InsufficientShares{Got: len(shares), Need: threshold}
	}

	indices := make([]int, threshold)
	for i := 0; i < threshold; i++ {
		indices[i] = shares[i].Index
	}

	result := curve.NewScalar()
	for i := 0; i < threshold; i++ {
		coeff := curve.LagrangeCoefficient(indices, shares[i].Index, 0)
		var weighted curve.Scalar
		weighted.Mul(&shares[i].Value, &coeff)

		var sum curve.Scalar
		sum.Add(&result, &weighted)
		result = sum
	}

	return result, nil
}

// ReconstructPoint recovers f(0)*Base from a threshold-sized subset of
// exponentiated shares, the group-element analog of ReconstructScalar.
func ReconstructPoint(shares []IndexedPoint, threshold int) (curve.Point, error) {
	if len(shares) < threshold {
		return curve.Point{}, &errs.InsufficientShares{Got: len(shares), Need: threshold}
	}

	indices := make([]int, threshold)
	for i := 0; i < threshold; i++ {
		indices[i] = shares[i].Index
	}

	result := curve.Identity()
	for i := 0; i < threshold; i++ {
		coeff := curve.LagrangeCoefficient(indices, shares[i].Index, 0)
		var weighted curve.Point
		weighted.ScalarMult(&coeff, &shares[i].Value)

		var sum curve.Point
		sum.Add(&result, &weighted)
		result = sum
	}

	return result, nil
}

// VerifyConsistency checks that a set of (index, scalar-share) pairs forms
// a single valid (threshold)-sharing by reconstructing the secret from two
// overlapping threshold-sized subsets and checking they agree: shares[0:threshold]
// and shares[1:threshold+1], in the order given. Only the first
// threshold+1 shares are examined; shares after those are not checked.
// With exactly threshold shares there is nothing to cross-check, so a
// same-length set is assumed consistent.
func VerifyConsistency(shares []IndexedScalar, threshold int) (bool, error) {
	if len(shares) < threshold {
		return false, nil
	}
	if len(shares) < threshold+1 {
		return len(shares) == threshold, nil
	}

	subset1 := shares[:threshold]

	subset2 := make([]IndexedScalar, 0, threshold)
	subset2 = append(subset2, shares[1:threshold]...)
	subset2 = append(subset2, shares[threshold])

	secret1, err := ReconstructScalar(subset1, threshold)
	if err != nil {
		return false, err
	}
	secret2, err := ReconstructScalar(subset2, threshold)
	if err != nil {
		return false, err
	}

	return secret1.Equal(&secret2), nil
}
