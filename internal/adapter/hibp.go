package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HIBPConfig holds settings for the Pwned Passwords range API client.
type HIBPConfig struct {
	// BaseURL is the API root, e.g. "https://api.pwnedpasswords.com".
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration
}

// hibpBreachChecker implements [BreachChecker] against the Pwned Passwords
// range API using k-anonymity: only the first 5 hex characters of the
// password's SHA-1 digest ever leave the client; the response lists all
// suffixes sharing that prefix and the client matches locally.
type hibpBreachChecker struct {
	client *resty.Client
}

// NewHIBPBreachChecker constructs a [BreachChecker] backed by the Pwned
// Passwords range API.
func NewHIBPBreachChecker(cfg HIBPConfig) BreachChecker {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.pwnedpasswords.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &hibpBreachChecker{client: cli}
}

// CheckPassword implements [BreachChecker]. Returns the number of times the
// password appears in the breach corpus, or 0 if it was not found.
func (h *hibpBreachChecker) CheckPassword(ctx context.Context, password string) (int, error) {
	digest := sha1.Sum([]byte(password))
	hash := strings.ToUpper(hex.EncodeToString(digest[:]))
	prefix, suffix := hash[:5], hash[5:]

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/range/" + prefix)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBreachLookup, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrBreachLookup, resp.StatusCode())
	}

	return matchSuffix(resp.String(), suffix)
}

// matchSuffix scans the "SUFFIX:COUNT" lines of a range response for the
// given suffix and returns its breach count, or 0 if absent.
func matchSuffix(body, suffix string) (int, error) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lineSuffix, countStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if !strings.EqualFold(lineSuffix, suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return 0, fmt.Errorf("%w: malformed count %q", ErrBreachLookup, countStr)
		}
		return count, nil
	}

	return 0, nil
}
