package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"
)

// simulatedBreachChecker is an in-memory [BreachChecker] for offline use.
// It keeps SHA-1 digests of a seed corpus so that, like the real range API,
// it never holds the breached passwords themselves.
type simulatedBreachChecker struct {
	mu     sync.RWMutex
	counts map[string]int // hex SHA-1 digest -> occurrence count
}

// NewSimulatedBreachChecker constructs an offline checker seeded with the
// given breached passwords. Repeating a password raises its reported count.
func NewSimulatedBreachChecker(breached ...string) BreachChecker {
	counts := make(map[string]int, len(breached))
	for _, password := range breached {
		counts[sha1Hex(password)]++
	}
	return &simulatedBreachChecker{counts: counts}
}

func (s *simulatedBreachChecker) CheckPassword(ctx context.Context, password string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[sha1Hex(password)], nil
}

func sha1Hex(password string) string {
	digest := sha1.Sum([]byte(password))
	return hex.EncodeToString(digest[:])
}
