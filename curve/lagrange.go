package curve

// LagrangeCoefficient computes lambda_i(j) = prod_{k in indices, k != i} (j-k)/(i-k) mod q.
// indices must contain i. j = 0 is the common case (interpolating the
// polynomial's constant term from a quorum of points).
func LagrangeCoefficient(indices []int, i, j int) Scalar {
	num := ScalarFromUint32(1)
	den := ScalarFromUint32(1)

	for _, k := range indices {
		if k == i {
			continue
		}
		jMinusK := scalarFromSignedInt(j - k)
		iMinusK := scalarFromSignedInt(i - k)

		var n Scalar
		n.Mul(&num, &jMinusK)
		num = n

		var d Scalar
		d.Mul(&den, &iMinusK)
		den = d
	}

	var denInv, result Scalar
	denInv.Invert(&den)
	result.Mul(&num, &denInv)
	return result
}

// scalarFromSignedInt converts a (possibly negative) small integer to its
// scalar representation mod q, i.e. n mod q.
func scalarFromSignedInt(n int) Scalar {
	if n >= 0 {
		return ScalarFromUint32(uint32(n))
	}
	pos := ScalarFromUint32(uint32(-n))
	var neg Scalar
	neg.Negate(&pos)
	return neg
}
