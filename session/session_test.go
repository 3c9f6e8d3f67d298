package session

import (
	"bytes"
	"testing"

	"github.com/obiria/dibtd/derive"
	"github.com/obiria/dibtd/ibtd"
	"github.com/obiria/dibtd/types"
)

func TestRunDKGCeremony(t *testing.T) {
	mpk, shares, err := RunDKGCeremony(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 5 {
		t.Fatalf("expected 5 shares, got %d", len(shares))
	}
	if mpk.Y.IsIdentity() || mpk.Gamma.IsIdentity() {
		t.Error("master public key should not contain identity points")
	}
}

func TestRunDKGCeremonyRejectsBadThreshold(t *testing.T) {
	if _, _, err := RunDKGCeremony(3, 0); err == nil {
		t.Error("expected error for threshold 0")
	}
}

func TestDecryptionSessionEndToEnd(t *testing.T) {
	mpk, masterShares, err := RunDKGCeremony(5, 3)
	if err != nil {
		t.Fatal(err)
	}

	masterShareSlice := make([]types.MasterSecretShare, 0, 5)
	for i := 1; i <= 5; i++ {
		masterShareSlice = append(masterShareSlice, masterShares[i])
	}

	group := types.GroupIdentity{ID: "ward-7", K: 2, Members: 4}
	privateShares, err := derive.Derive(masterShareSlice, group, 3)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("session package roundtrip")
	ct, err := ibtd.Encrypt(message, "ward-7", mpk)
	if err != nil {
		t.Fatal(err)
	}

	sess := NewDecryptionSession(ct, 2)
	for i := 1; i <= 2; i++ {
		share := privateShares[i]
		ds, err := ibtd.ShareDecrypt(ct, &share)
		if err != nil {
			t.Fatal(err)
		}
		sess.AddShare(*ds)
	}

	if !sess.Ready() {
		t.Fatal("session should be ready after collecting threshold shares")
	}

	plaintext, err := sess.Decrypt()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, message) {
		t.Errorf("got %q, want %q", plaintext, message)
	}

	if _, err := sess.Decrypt(); err == nil {
		t.Error("expected second Decrypt call to fail: session already consumed")
	}
}
