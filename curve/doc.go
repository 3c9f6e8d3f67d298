// Package curve provides the scalar and point arithmetic the rest of this
// module is built on: secp256k1 scalars reduced modulo the group order q,
// compressed-point group elements, and the domain-separated hash functions
// H1/H2/H3 used throughout the DKG, derivation, and encryption protocols.
//
// Scalar and Point follow a mutable-receiver convention: arithmetic methods
// write their result into the receiver and return it, so expressions chain
// the way the underlying secp256k1 library's own NonConst operations do:
//
//	var sum curve.Scalar
//	sum.Add(&a, &b)
//
// Every Scalar is kept reduced modulo q at all times; there is no
// unreduced intermediate state to reason about.
package curve
