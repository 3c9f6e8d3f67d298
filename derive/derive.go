// Package derive implements distributed key derivation: converting a
// quorum of DKGC master secret shares and a group identity into a fresh
// (k,m)-threshold sharing of a per-group secret, handed out as
// PrivateKeyShares to the group's m members.
package derive

import (
	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
	"github.com/obiria/dibtd/poly"
	"github.com/obiria/dibtd/types"
)

// Derive computes the group's private key shares from a quorum of DKGC
// master secret shares. Each DKGC node i folds its own (s_i, z_i) into
// psi_i' = s_i + H1(id)*z_i, a valid Shamir share of the group secret
// under the DKGC's own (t,n) sharing. dkgThreshold of those psi' values
// are combined via Lagrange interpolation to reconstruct the group
// secret, which is then reshared under the group's own (K,Members)
// threshold.
func Derive(masterShares []types.MasterSecretShare, group types.GroupIdentity, dkgThreshold int) (map[int]types.PrivateKeyShare, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}
	if len(masterShares) < dkgThreshold {
		return nil, &errs.InsufficientShares{Got: len(masterShares), Need: dkgThreshold}
	}

	idHash := curve.H1([]byte(group.ID))

	quorum := masterShares[:dkgThreshold]
	indices := make([]int, len(quorum))
	groupShares := make([]curve.Scalar, len(quorum))

	for i, share := range quorum {
		var idZ curve.Scalar
		idZ.Mul(&idHash, &share.ZI)

		var psi curve.Scalar
		psi.Add(&share.SI, &idZ)

		indices[i] = share.Index
		groupShares[i] = psi
	}

	groupSecret := curve.NewScalar()
	for i, idx := range indices {
		coeff := curve.LagrangeCoefficient(indices, idx, 0)
		var weighted curve.Scalar
		weighted.Mul(&groupShares[i], &coeff)

		var sum curve.Scalar
		sum.Add(&groupSecret, &weighted)
		groupSecret = sum
	}

	p, err := poly.WithConstant(group.K-1, groupSecret)
	if err != nil {
		return nil, err
	}

	gen := curve.Generator()
	out := make(map[int]types.PrivateKeyShare, group.Members)
	for member := 1; member <= group.Members; member++ {
		psiI := p.Evaluate(member)

		var vk curve.Point
		vk.ScalarMult(&psiI, &gen)

		out[member] = types.PrivateKeyShare{
			Index:           member,
			Psi:             psiI,
			VerificationKey: vk,
		}
	}

	return out, nil
}

// GroupPublicKey computes Y + H1(id)*Gamma, the group-specific public key
// that IBTD encryption folds into Delta. Exposing it lets a verifier check
// a PrivateKeyShare's VerificationKey sums correctly against the group
// key without re-running Derive.
func GroupPublicKey(mpk *types.MasterPublicKey, groupID string) curve.Point {
	idHash := curve.H1([]byte(groupID))

	var gammaScaled curve.Point
	gammaScaled.ScalarMult(&idHash, &mpk.Gamma)

	var result curve.Point
	result.Add(&mpk.Y, &gammaScaled)
	return result
}

// VerifyPrivateShare recomputes psi_i*P and checks it against the
// share's published VerificationKey, a sanity check a member can run on
// a share it was handed independent of any Schnorr proof.
func VerifyPrivateShare(share *types.PrivateKeyShare) bool {
	gen := curve.Generator()
	var expected curve.Point
	expected.ScalarMult(&share.Psi, &gen)
	return expected.Equal(&share.VerificationKey)
}
