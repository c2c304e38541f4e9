// Package totp implements RFC 6238 time-based one-time passwords for the
// two-factor enrollment flow. Secrets are generated locally and handed to
// the user's authenticator app; validation tolerates one time step of clock
// drift in either direction.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

const (
	timeStep   = 30 * time.Second
	codeDigits = 6
	secretLen  = 20 // 160 bits, per RFC 4226 recommendation
)

// GenerateSecret produces a new base64-encoded 160-bit secret from the OS
// CSPRNG. The secret must be stored with the session and shown to the user
// exactly once during enrollment.
func GenerateSecret() (string, error) {
	secret := make([]byte, secretLen)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return "", fmt.Errorf("read random secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(secret), nil
}

// CurrentCode returns the 6-digit code for the current time window.
func CurrentCode(base64Secret string) (string, error) {
	return codeAt(base64Secret, time.Now())
}

// Validate reports whether inputCode matches the secret for the current
// window or one window on either side (clock-drift tolerance). Malformed
// codes (wrong length, non-digits) never validate.
func Validate(base64Secret, inputCode string) bool {
	if len(inputCode) != codeDigits {
		return false
	}
	for _, r := range inputCode {
		if r < '0' || r > '9' {
			return false
		}
	}

	now := time.Now()
	for offset := -1; offset <= 1; offset++ {
		expected, err := codeAt(base64Secret, now.Add(time.Duration(offset)*timeStep))
		if err != nil {
			return false
		}
		if expected == inputCode {
			return true
		}
	}
	return false
}

// OtpAuthURL builds the otpauth:// enrollment URL understood by
// authenticator apps. The secret is re-encoded to unpadded base32 as the
// otpauth scheme requires.
func OtpAuthURL(base64Secret, account, issuer string) (string, error) {
	b32, err := Base32Secret(base64Secret)
	if err != nil {
		return "", err
	}

	v := url.Values{}
	v.Set("secret", b32)
	v.Set("issuer", issuer)
	v.Set("digits", "6")
	v.Set("period", "30")

	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer), url.PathEscape(account), v.Encode()), nil
}

// Base32Secret converts the stored base64 secret into the unpadded base32
// form that authenticator apps accept for manual entry.
func Base32Secret(base64Secret string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}
	return strings.TrimRight(base32.StdEncoding.EncodeToString(raw), "="), nil
}

func codeAt(base64Secret string, at time.Time) (string, error) {
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}

	window := uint64(at.Unix() / int64(timeStep.Seconds()))
	var counter [8]byte
	for i := 7; i >= 0; i-- {
		counter[i] = byte(window & 0xFF)
		window >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counter[:])
	sum := mac.Sum(nil)

	// Dynamic truncation per RFC 4226 §5.3.
	offset := sum[len(sum)-1] & 0xF
	binary := (uint32(sum[offset])&0x7F)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])

	return fmt.Sprintf("%06d", binary%1_000_000), nil
}
