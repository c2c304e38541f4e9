// Package generator implements secure password generation from a set of
// character-class options. It is pure and stateless: the same options never
// influence later calls, and every character is drawn independently from the
// OS CSPRNG.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/securevault/securevault/models"
)

// ErrInvalidOptions is returned when no character class is enabled or the
// requested length is outside the accepted range.
var ErrInvalidOptions = errors.New("invalid generator options")

// Class alphabets, concatenated in a fixed order when building the combined
// character set. Order affects only alphabet construction, not output bias:
// each output character is drawn uniformly from the combined set.
const (
	uppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	numbersAlphabet   = "0123456789"
	symbolsAlphabet   = "!@#$%&*()-_=+[]{}"
)

// Generate produces a random password of exactly opts.Length characters,
// each drawn uniformly (with replacement) from the union of the enabled
// class alphabets.
//
// Returns [ErrInvalidOptions] if no class is enabled or if opts.Length is
// outside [models.MinPasswordLength, models.MaxPasswordLength].
func Generate(opts models.GeneratorOptions) (string, error) {
	if !opts.HasAnyClass() {
		return "", fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidOptions)
	}
	if opts.Length < models.MinPasswordLength || opts.Length > models.MaxPasswordLength {
		return "", fmt.Errorf("%w: length %d outside [%d, %d]",
			ErrInvalidOptions, opts.Length, models.MinPasswordLength, models.MaxPasswordLength)
	}

	alphabet := buildAlphabet(opts)
	max := big.NewInt(int64(len(alphabet)))

	password := make([]byte, opts.Length)
	for i := range password {
		// rand.Int performs rejection sampling internally, so the draw is
		// uniform over the alphabet regardless of its size.
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		password[i] = alphabet[n.Int64()]
	}

	return string(password), nil
}

func buildAlphabet(opts models.GeneratorOptions) string {
	var alphabet string
	if opts.UseUppercase {
		alphabet += uppercaseAlphabet
	}
	if opts.UseLowercase {
		alphabet += lowercaseAlphabet
	}
	if opts.UseNumbers {
		alphabet += numbersAlphabet
	}
	if opts.UseSymbols {
		alphabet += symbolsAlphabet
	}
	return alphabet
}
