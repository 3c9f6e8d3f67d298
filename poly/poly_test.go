package poly

import (
	"testing"

	"github.com/obiria/dibtd/curve"
)

func TestWithConstantEvaluatesToConstantAtZero(t *testing.T) {
	secret, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}

	p, err := WithConstant(2, secret)
	if err != nil {
		t.Fatal(err)
	}

	got := p.Evaluate(0)
	if !got.Equal(&secret) {
		t.Error("p(0) should equal the fixed constant term")
	}
}

func TestNewDegreeMatchesCoefficientCount(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Coefficients) != 4 {
		t.Errorf("expected 4 coefficients for degree 3, got %d", len(p.Coefficients))
	}
}
