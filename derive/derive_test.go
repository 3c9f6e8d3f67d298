package derive

import (
	"testing"

	"github.com/obiria/dibtd/dkg"
	"github.com/obiria/dibtd/types"
)

func ceremony(t *testing.T, n, threshold int) (*types.MasterPublicKey, []types.MasterSecretShare) {
	t.Helper()
	c, err := dkg.New(n, threshold)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		if err := c.InitParticipant(i); err != nil {
			t.Fatal(err)
		}
	}
	for from := 1; from <= n; from++ {
		shares, err := c.DistributeShares(from)
		if err != nil {
			t.Fatal(err)
		}
		for to, s := range shares {
			if err := c.ReceiveShares(to, from, s); err != nil {
				t.Fatal(err)
			}
		}
	}
	mpk, secretShares, err := c.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	out := make([]types.MasterSecretShare, 0, len(secretShares))
	for i := 1; i <= n; i++ {
		out = append(out, secretShares[i])
	}
	return mpk, out
}

func TestDerivePrivateShareVerifies(t *testing.T) {
	_, masterShares := ceremony(t, 5, 3)

	group := types.GroupIdentity{ID: "clinic-42", K: 2, Members: 4}
	shares, err := Derive(masterShares, group, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(shares) != 4 {
		t.Fatalf("expected 4 member shares, got %d", len(shares))
	}
	for _, s := range shares {
		if !VerifyPrivateShare(&s) {
			t.Errorf("member %d share failed self-verification", s.Index)
		}
	}
}

func TestDeriveRejectsInvalidGroupIdentity(t *testing.T) {
	_, masterShares := ceremony(t, 5, 3)

	bad := types.GroupIdentity{ID: "", K: 2, Members: 4}
	if _, err := Derive(masterShares, bad, 3); err == nil {
		t.Error("expected error for empty group id")
	}

	bad2 := types.GroupIdentity{ID: "g", K: 5, Members: 4}
	if _, err := Derive(masterShares, bad2, 3); err == nil {
		t.Error("expected error for K > Members")
	}
}

func TestGroupPublicKeyDeterministic(t *testing.T) {
	mpk, _ := ceremony(t, 4, 3)

	a := GroupPublicKey(mpk, "group-a")
	b := GroupPublicKey(mpk, "group-a")
	c := GroupPublicKey(mpk, "group-b")

	if !a.Equal(&b) {
		t.Error("GroupPublicKey should be deterministic for the same id")
	}
	if a.Equal(&c) {
		t.Error("different group ids should yield different group public keys")
	}
}
