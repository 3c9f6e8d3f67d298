package ibtd

import (
	"bytes"
	"testing"

	"github.com/obiria/dibtd/derive"
	"github.com/obiria/dibtd/dkg"
	"github.com/obiria/dibtd/types"
)

func setup(t *testing.T, n, dkgT, k, members int, groupID string) (*types.MasterPublicKey, map[int]types.PrivateKeyShare) {
	t.Helper()

	c, err := dkg.New(n, dkgT)
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

	masterShares := make([]types.MasterSecretShare, 0, n)
	for i := 1; i <= n; i++ {
		masterShares = append(masterShares, secretShares[i])
	}

	group := types.GroupIdentity{ID: groupID, K: k, Members: members}
	privateShares, err := derive.Derive(masterShares, group, dkgT)
	if err != nil {
		t.Fatal(err)
	}

	return mpk, privateShares
}

// TestEncryptDecryptRoundtrip exercises scenario S1: a message encrypted
// for a group is recovered exactly from a threshold quorum of shares.
func TestEncryptDecryptRoundtrip(t *testing.T) {
	mpk, privateShares := setup(t, 5, 3, 2, 4, "patient-record-group")

	message := []byte("confidential health record payload")
	ct, err := Encrypt(message, "patient-record-group", mpk)
	if err != nil {
		t.Fatal(err)
	}

	var decShares []types.DecryptionShare
	for i := 1; i <= 2; i++ {
		share := privateShares[i]
		ds, err := ShareDecrypt(ct, &share)
		if err != nil {
			t.Fatal(err)
		}
		decShares = append(decShares, *ds)
	}

	plaintext, err := Decrypt(ct, decShares, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(plaintext, message) {
		t.Errorf("decrypted plaintext mismatch: got %q, want %q", plaintext, message)
	}
}

// TestDecryptFailsWithWrongGroup exercises scenario S2: a member of a
// different group cannot contribute a usable decryption share.
func TestDecryptFailsWithWrongGroup(t *testing.T) {
	mpk, _ := setup(t, 5, 3, 2, 4, "group-a")
	_, otherShares := setup(t, 5, 3, 2, 4, "group-b")

	message := []byte("data for group a only")
	ct, err := Encrypt(message, "group-a", mpk)
	if err != nil {
		t.Fatal(err)
	}

	share := otherShares[1]
	ds, err := ShareDecrypt(ct, &share)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(ct, []types.DecryptionShare{*ds, *ds}, 2)
	if err == nil {
		t.Error("expected decryption to fail using shares from an unrelated group")
	}
}

// TestDecryptFailsWithInsufficientShares exercises scenario S3.
func TestDecryptFailsWithInsufficientShares(t *testing.T) {
	mpk, privateShares := setup(t, 5, 3, 3, 5, "threshold-group")

	message := []byte("needs 3 of 5 shares")
	ct, err := Encrypt(message, "threshold-group", mpk)
	if err != nil {
		t.Fatal(err)
	}

	share := privateShares[1]
	ds, err := ShareDecrypt(ct, &share)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(ct, []types.DecryptionShare{*ds}, 3)
	if err == nil {
		t.Error("expected insufficient-shares error with only 1 of 3 required shares")
	}
}

// TestShareDecryptRejectsTamperedCiphertext exercises scenario S4.
func TestShareDecryptRejectsTamperedCiphertext(t *testing.T) {
	mpk, privateShares := setup(t, 5, 3, 2, 4, "tamper-group")

	ct, err := Encrypt([]byte("original message"), "tamper-group", mpk)
	if err != nil {
		t.Fatal(err)
	}

	ct.F[0] ^= 0xFF // corrupt F, breaking the delta*P == D + H3(D,E,F)*E tag

	share := privateShares[1]
	if _, err := ShareDecrypt(ct, &share); err == nil {
		t.Error("expected ShareDecrypt to reject a tampered ciphertext")
	}
}

// TestEncryptProducesDistinctCiphertextsPerCall exercises scenario S5:
// encrypting the same message twice yields unlinkable ciphertexts.
func TestEncryptProducesDistinctCiphertextsPerCall(t *testing.T) {
	mpk, _ := setup(t, 5, 3, 2, 4, "repeat-group")

	message := []byte("same message, different ciphertexts")
	ct1, err := Encrypt(message, "repeat-group", mpk)
	if err != nil {
		t.Fatal(err)
	}
	ct2, err := Encrypt(message, "repeat-group", mpk)
	if err != nil {
		t.Fatal(err)
	}

	if ct1.D.Equal(&ct2.D) {
		t.Error("two independent encryptions should not share D")
	}
}

// TestWireFormatRoundtrip exercises the section 6 wire format end to end.
func TestWireFormatRoundtrip(t *testing.T) {
	mpk, _ := setup(t, 5, 3, 2, 4, "wire-group")

	ct, err := Encrypt([]byte("roundtrip me"), "wire-group", mpk)
	if err != nil {
		t.Fatal(err)
	}

	encoded, err := ct.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := types.UnmarshalCiphertext(encoded)
	if err != nil {
		t.Fatal(err)
	}

	if !decoded.D.Equal(&ct.D) || !decoded.E.Equal(&ct.E) || !bytes.Equal(decoded.F, ct.F) {
		t.Error("decoded ciphertext does not match original")
	}
}
