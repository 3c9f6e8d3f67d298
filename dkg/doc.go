// Package dkg implements the distributed key generation protocol run by
// the n DKGC nodes under a (t,n) threshold. Each participant samples two
// degree-(t-1) polynomials, f0 and f1, publishes per-recipient
// commitments f0(j)*P and f1(j)*P for every index j, and exchanges Shamir
// shares of both polynomials with every other participant. After all
// shares are verified against their senders' commitments, Finalize
// aggregates each participant's received shares into a MasterSecretShare
// and interpolates the aggregated shares of the lowest-indexed t
// participants at zero to obtain the master public key (Y, Gamma).
//
// A typical ceremony:
//
//	c, err := dkg.New(n, t)
//	for i := 1; i <= n; i++ {
//		c.InitParticipant(i)
//	}
//	for _, from := range participantIDs {
//		shares, _ := c.DistributeShares(from)
//		for to, share := range shares {
//			c.ReceiveShares(to, from, share)
//		}
//	}
//	for i := 1; i <= n; i++ {
//		ok, _ := c.VerifyShares(i)
//		// ok must be true before calling Finalize
//	}
//	mpk, shares, err := c.Finalize()
package dkg
