package curve

import (
	"crypto/rand"
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an element of Z_q, where q is the order of the secp256k1 group.
// The zero value is the scalar 0.
type Scalar struct {
	v secp.ModNScalar
}

// NewScalar returns the scalar 0.
func NewScalar() Scalar {
	var s Scalar
	s.v.SetInt(0)
	return s
}

// ScalarFromUint32 returns the scalar representing the small non-negative
// integer n. Used for participant indices in polynomial evaluation.
func ScalarFromUint32(n uint32) Scalar {
	var s Scalar
	s.v.SetInt(n)
	return s
}

// RandomScalar draws a uniformly random non-zero scalar from the system
// entropy source.
func RandomScalar() (Scalar, error) {
	var buf [32]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return Scalar{}, fmt.Errorf("curve: reading random scalar: %w", err)
		}
		var s Scalar
		overflow := s.v.SetByteSlice(buf[:])
		if overflow || s.v.IsZero() {
			continue
		}
		return s, nil
	}
}

// ScalarFromBytes interprets a 32-byte big-endian encoding as a scalar,
// reducing it modulo q.
func ScalarFromBytes(b []byte) Scalar {
	var s Scalar
	s.v.SetByteSlice(b)
	return s
}

// Bytes returns the scalar's 32-byte big-endian encoding.
func (s *Scalar) Bytes() [32]byte {
	return s.v.Bytes()
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Equal reports whether s and other represent the same value mod q.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.v.Equals(&other.v)
}

// Set copies other into s and returns s.
func (s *Scalar) Set(other *Scalar) *Scalar {
	s.v.Set(&other.v)
	return s
}

// Add sets s = a + b mod q and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add2(&a.v, &b.v)
	return s
}

// Sub sets s = a - b mod q and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	var negB secp.ModNScalar
	negB.Set(&b.v).Negate()
	s.v.Add2(&a.v, &negB)
	return s
}

// Mul sets s = a * b mod q and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v.Mul2(&a.v, &b.v)
	return s
}

// Negate sets s = -a mod q and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.v.Set(&a.v).Negate()
	return s
}

// Invert sets s = a^-1 mod q and returns s. Panics if a is zero, the same
// way division by zero would.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	if a.v.IsZero() {
		panic("curve: cannot invert the zero scalar")
	}
	s.v.Set(&a.v).InverseValNonConst()
	return s
}

// Point is a secp256k1 group element, stored internally in Jacobian
// coordinates for cheap addition and scalar multiplication.
type Point struct {
	v secp.JacobianPoint
}

// Generator returns the standard secp256k1 base point P.
func Generator() Point {
	var p Point
	one := secp.ModNScalar{}
	one.SetInt(1)
	secp.ScalarBaseMultNonConst(&one, &p.v)
	return p
}

// Identity returns the point at infinity.
func Identity() Point {
	var p Point
	p.v.X.SetInt(0)
	p.v.Y.SetInt(0)
	p.v.Z.SetInt(0)
	return p
}

// ScalarBaseMult sets p = k*P, where P is the generator, and returns p.
func (p *Point) ScalarBaseMult(k *Scalar) *Point {
	secp.ScalarBaseMultNonConst(&k.v, &p.v)
	return p
}

// ScalarMult sets p = k*base and returns p.
func (p *Point) ScalarMult(k *Scalar, base *Point) *Point {
	secp.ScalarMultNonConst(&k.v, &base.v, &p.v)
	return p
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	secp.AddNonConst(&a.v, &b.v, &p.v)
	return p
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	affine := p.v
	affine.ToAffine()
	return affine.X.IsZero() && affine.Y.IsZero()
}

// Equal reports whether p and other represent the same group element.
func (p *Point) Equal(other *Point) bool {
	a, b := p.v, other.v
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// Bytes returns the 33-byte SEC1 compressed encoding of p.
func (p *Point) Bytes() [33]byte {
	affine := p.v
	affine.ToAffine()
	x, y := affine.X, affine.Y
	pub := secp.NewPublicKey(&x, &y)
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// SetBytes decodes a 33-byte SEC1 compressed point into p.
func (p *Point) SetBytes(b []byte) error {
	pub, err := secp.ParsePubKey(b)
	if err != nil {
		return fmt.Errorf("curve: parsing compressed point: %w", err)
	}
	pub.AsJacobian(&p.v)
	return nil
}
