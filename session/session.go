package session

import (
	"fmt"

	"github.com/obiria/dibtd/dkg"
	"github.com/obiria/dibtd/types"
)

// RunDKGCeremony drives a complete local DKG ceremony for n participants
// under threshold t: every participant is initialized, shares are
// distributed and verified, and the ceremony is finalized into a master
// public key and each participant's secret share.
//
// It returns an error if any participant fails share verification, which
// should not happen absent a bug in the caller's wiring, since shares
// never leave this process.
func RunDKGCeremony(n, t int) (*types.MasterPublicKey, map[int]types.MasterSecretShare, error) {
	c, err := dkg.New(n, t)
	if err != nil {
		return nil, nil, err
	}

	for i := 1; i <= n; i++ {
		if err := c.InitParticipant(i); err != nil {
			return nil, nil, fmt.Errorf("initializing participant %d: %w", i, err)
		}
	}

	for from := 1; from <= n; from++ {
		shares, err := c.DistributeShares(from)
		if err != nil {
			return nil, nil, fmt.Errorf("distributing shares from participant %d: %w", from, err)
		}
		for to, share := range shares {
			if err := c.ReceiveShares(to, from, share); err != nil {
				return nil, nil, fmt.Errorf("delivering share from %d to %d: %w", from, to, err)
			}
		}
	}

	for i := 1; i <= n; i++ {
		ok, err := c.VerifyShares(i)
		if err != nil {
			return nil, nil, fmt.Errorf("verifying shares for participant %d: %w", i, err)
		}
		if !ok {
			return nil, nil, fmt.Errorf("participant %d received a share that failed verification", i)
		}
	}

	return c.Finalize()
}
