// Package poly implements the Shamir-sharing polynomials used by the DKG
// and key-derivation protocols: random polynomials for secret sharing, and
// fixed-constant-term polynomials for resharing a reconstructed secret
// under a new threshold.
package poly

import "github.com/obiria/dibtd/curve"

// Polynomial is a polynomial over Z_q represented by its coefficients in
// ascending order: p(x) = coefficients[0] + coefficients[1]*x + ...
type Polynomial struct {
	Coefficients []curve.Scalar
}

// New returns a polynomial of the given degree with uniformly random
// coefficients, including the constant term.
func New(degree int) (*Polynomial, error) {
	coeffs := make([]curve.Scalar, degree+1)
	for i := range coeffs {
		c, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{Coefficients: coeffs}, nil
}

// WithConstant returns a polynomial of the given degree whose constant
// term is fixed to constant and whose remaining coefficients are
// uniformly random. Used to reshare a reconstructed secret under a new
// threshold.
func WithConstant(degree int, constant curve.Scalar) (*Polynomial, error) {
	coeffs := make([]curve.Scalar, degree+1)
	coeffs[0] = constant
	for i := 1; i < len(coeffs); i++ {
		c, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{Coefficients: coeffs}, nil
}

// Evaluate computes p(x) as the sum of coefficients[i]*x^i, with x^i
// accumulated iteratively, where x is a small non-negative integer (a
// participant index).
func (p *Polynomial) Evaluate(x int) curve.Scalar {
	xScalar := curve.ScalarFromUint32(uint32(x))

	result := curve.NewScalar()
	xPower := curve.ScalarFromUint32(1)

	for _, coeff := range p.Coefficients {
		var t curve.Scalar
		t.Mul(&coeff, &xPower)

		var sum curve.Scalar
		sum.Add(&result, &t)
		result = sum

		var nextPower curve.Scalar
		nextPower.Mul(&xPower, &xScalar)
		xPower = nextPower
	}

	return result
}
