package session

import (
	"errors"
	"sync"

	"github.com/obiria/dibtd/ibtd"
	"github.com/obiria/dibtd/types"
)

// DecryptionSession collects decryption shares for a single ciphertext
// and recombines them exactly once. Calling Decrypt a second time returns
// an error, the same nonce-reuse-style guard a FROST signing session uses
// for its consumed state.
type DecryptionSession struct {
	mu         sync.Mutex
	ciphertext *types.Ciphertext
	threshold  int
	shares     map[int]types.DecryptionShare
	consumed   bool
}

// NewDecryptionSession creates a session that will recombine threshold
// decryption shares for ciphertext.
func NewDecryptionSession(ciphertext *types.Ciphertext, threshold int) *DecryptionSession {
	return &DecryptionSession{
		ciphertext: ciphertext,
		threshold:  threshold,
		shares:     make(map[int]types.DecryptionShare),
	}
}

// AddShare records a decryption share contributed by a group member.
// Shares from the same index overwrite any previously recorded share
// from that index. Returns the number of distinct shares collected so
// far.
func (s *DecryptionSession) AddShare(share types.DecryptionShare) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares[share.Index] = share
	return len(s.shares)
}

// Ready reports whether enough shares have been collected to attempt
// Decrypt.
func (s *DecryptionSession) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shares) >= s.threshold
}

// Decrypt recombines the collected shares into the plaintext. This
// consumes the session: calling Decrypt a second time returns an error
// rather than silently repeating work against a session whose shares
// may have been mutated by a concurrent AddShare.
func (s *DecryptionSession) Decrypt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return nil, errors.New("decryption session already consumed")
	}
	s.consumed = true

	shares := make([]types.DecryptionShare, 0, len(s.shares))
	for _, share := range s.shares {
		shares = append(shares, share)
	}

	return ibtd.Decrypt(s.ciphertext, shares, s.threshold)
}
