package dkg

import (
	"sort"

	"github.com/obiria/dibtd/curve"
	"github.com/obiria/dibtd/errs"
	"github.com/obiria/dibtd/poly"
	"github.com/obiria/dibtd/types"
)

type receivedShare struct {
	share0, share1 curve.Scalar
}

// Participant holds one DKGC node's polynomials, its published
// commitments to every participant's evaluated share, and the shares it
// has received from other participants so far.
type Participant struct {
	index int
	f0    *poly.Polynomial
	f1    *poly.Polynomial

	// commitments0[i-1] = (f0.Evaluate(i)) * P, published so any
	// recipient of index i can check their received share.
	commitments0 []curve.Point
	commitments1 []curve.Point

	sharesReceived map[int]receivedShare
}

// Coordinator drives a single DKG ceremony among n participants under
// threshold t. It is not safe for concurrent use; each method call
// mutates ceremony state.
type Coordinator struct {
	participants map[int]*Participant
	n, t         int
}

// New creates a Coordinator for an n-participant, t-threshold ceremony.
func New(n, t int) (*Coordinator, error) {
	if t > n || t <= 0 {
		return nil, &errs.InvalidThreshold{T: t, N: n}
	}
	return &Coordinator{
		participants: make(map[int]*Participant),
		n:            n,
		t:            t,
	}, nil
}

// InitParticipant samples participant index's two degree-(t-1)
// polynomials and publishes its commitments to every participant's
// evaluated share.
func (c *Coordinator) InitParticipant(index int) error {
	if index < 1 || index > c.n {
		return &errs.DKGProtocolFailed{Reason: "invalid participant index"}
	}

	f0, err := poly.New(c.t - 1)
	if err != nil {
		return err
	}
	f1, err := poly.New(c.t - 1)
	if err != nil {
		return err
	}

	gen := curve.Generator()
	commitments0 := make([]curve.Point, c.n)
	commitments1 := make([]curve.Point, c.n)

	for i := 1; i <= c.n; i++ {
		share0 := f0.Evaluate(i)
		share1 := f1.Evaluate(i)

		var c0, c1 curve.Point
		c0.ScalarMult(&share0, &gen)
		c1.ScalarMult(&share1, &gen)

		commitments0[i-1] = c0
		commitments1[i-1] = c1
	}

	c.participants[index] = &Participant{
		index:          index,
		f0:             f0,
		f1:             f1,
		commitments0:   commitments0,
		commitments1:   commitments1,
		sharesReceived: make(map[int]receivedShare),
	}
	return nil
}

// DistributeShares evaluates participant from's polynomials at every
// other participant's index, producing the shares to be sent to them
// over an authenticated channel.
func (c *Coordinator) DistributeShares(from int) (map[int][2]curve.Scalar, error) {
	p, ok := c.participants[from]
	if !ok {
		return nil, &errs.DKGProtocolFailed{Reason: "participant not found"}
	}

	shares := make(map[int][2]curve.Scalar, c.n-1)
	for to := 1; to <= c.n; to++ {
		if to == from {
			continue
		}
		shares[to] = [2]curve.Scalar{p.f0.Evaluate(to), p.f1.Evaluate(to)}
	}
	return shares, nil
}

// ReceiveShares records the (share0, share1) pair participant "to"
// received from participant "from".
func (c *Coordinator) ReceiveShares(to, from int, shares [2]curve.Scalar) error {
	p, ok := c.participants[to]
	if !ok {
		return &errs.DKGProtocolFailed{Reason: "participant not found"}
	}
	p.sharesReceived[from] = receivedShare{share0: shares[0], share1: shares[1]}
	return nil
}

// VerifyShares checks every share participant index has received against
// its sender's published commitment for that index.
func (c *Coordinator) VerifyShares(index int) (bool, error) {
	p, ok := c.participants[index]
	if !ok {
		return false, &errs.DKGProtocolFailed{Reason: "participant not found"}
	}

	gen := curve.Generator()
	for from, rs := range p.sharesReceived {
		sender, ok := c.participants[from]
		if !ok {
			return false, &errs.DKGProtocolFailed{Reason: "sender not found"}
		}

		var expected0, expected1 curve.Point
		expected0.ScalarMult(&rs.share0, &gen)
		expected1.ScalarMult(&rs.share1, &gen)

		if !sender.commitments0[index-1].Equal(&expected0) ||
			!sender.commitments1[index-1].Equal(&expected1) {
			return false, nil
		}
	}
	return true, nil
}

// Finalize aggregates each participant's own evaluation and every share
// it received into its MasterSecretShare, and computes the master public
// key as Y = sum lambda_i(0)*s_i*P and Gamma = sum lambda_i(0)*z_i*P over
// the lowest-indexed t participants.
func (c *Coordinator) Finalize() (*types.MasterPublicKey, map[int]types.MasterSecretShare, error) {
	if len(c.participants) < c.t {
		return nil, nil, &errs.InsufficientShares{Got: len(c.participants), Need: c.t}
	}

	secretShares := make(map[int]types.MasterSecretShare, len(c.participants))
	for index, p := range c.participants {
		sI := p.f0.Evaluate(index)
		zI := p.f1.Evaluate(index)

		for _, rs := range p.sharesReceived {
			var sSum curve.Scalar
			sSum.Add(&sI, &rs.share0)
			sI = sSum

			var zSum curve.Scalar
			zSum.Add(&zI, &rs.share1)
			zI = zSum
		}

		if sI.IsZero() || zI.IsZero() {
			return nil, nil, errs.KeyGenerationFailed
		}

		secretShares[index] = types.MasterSecretShare{Index: index, SI: sI, ZI: zI}
	}

	// The quorum Q is deterministically the lowest-indexed t completed
	// participants, so every caller converges on the same MPK regardless
	// of arrival order.
	completed := make([]int, 0, len(c.participants))
	for index := range c.participants {
		completed = append(completed, index)
	}
	sort.Ints(completed)
	indices := completed[:c.t]

	y := curve.Identity()
	gamma := curve.Identity()
	gen := curve.Generator()

	for _, i := range indices {
		share := secretShares[i]

		coeff := curve.LagrangeCoefficient(indices, i, 0)

		var sScaled, zScaled curve.Scalar
		sScaled.Mul(&share.SI, &coeff)
		zScaled.Mul(&share.ZI, &coeff)

		var yI, gammaI curve.Point
		yI.ScalarMult(&sScaled, &gen)
		gammaI.ScalarMult(&zScaled, &gen)

		var ySum, gammaSum curve.Point
		ySum.Add(&y, &yI)
		y = ySum
		gammaSum.Add(&gamma, &gammaI)
		gamma = gammaSum
	}

	mpk := &types.MasterPublicKey{
		Y:      y,
		Gamma:  gamma,
		Params: types.SystemParams{N: c.n, T: c.t},
	}

	return mpk, secretShares, nil
}
