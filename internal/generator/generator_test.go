package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevault/securevault/models"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		opts     models.GeneratorOptions
		alphabet string
	}{
		{
			name:     "uppercase only",
			opts:     models.GeneratorOptions{Length: 12, UseUppercase: true},
			alphabet: uppercaseAlphabet,
		},
		{
			name:     "lowercase only",
			opts:     models.GeneratorOptions{Length: 8, UseLowercase: true},
			alphabet: lowercaseAlphabet,
		},
		{
			name:     "numbers only",
			opts:     models.GeneratorOptions{Length: 64, UseNumbers: true},
			alphabet: numbersAlphabet,
		},
		{
			name:     "symbols only",
			opts:     models.GeneratorOptions{Length: 16, UseSymbols: true},
			alphabet: symbolsAlphabet,
		},
		{
			name: "letters and numbers",
			opts: models.GeneratorOptions{
				Length: 20, UseUppercase: true, UseLowercase: true, UseNumbers: true,
			},
			alphabet: uppercaseAlphabet + lowercaseAlphabet + numbersAlphabet,
		},
		{
			name:     "all classes",
			opts:     models.DefaultGeneratorOptions(),
			alphabet: uppercaseAlphabet + lowercaseAlphabet + numbersAlphabet + symbolsAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.opts)
			require.NoError(t, err)
			require.Len(t, got, tt.opts.Length)
			for _, r := range got {
				assert.Contains(t, tt.alphabet, string(r),
					"character %q outside enabled alphabet", r)
			}
		})
	}
}

func TestGenerate_ExcludesDisabledClasses(t *testing.T) {
	opts := models.GeneratorOptions{Length: 64, UseLowercase: true, UseNumbers: true}

	got, err := Generate(opts)
	require.NoError(t, err)

	for _, r := range got {
		assert.False(t, strings.ContainsRune(uppercaseAlphabet, r),
			"found uppercase %q with uppercase disabled", r)
		assert.False(t, strings.ContainsRune(symbolsAlphabet, r),
			"found symbol %q with symbols disabled", r)
	}
}

func TestGenerate_NoClassEnabled(t *testing.T) {
	_, err := Generate(models.GeneratorOptions{Length: 12})
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	for _, length := range []int{0, 7, 65, -1} {
		opts := models.DefaultGeneratorOptions()
		opts.Length = length

		_, err := Generate(opts)
		assert.ErrorIs(t, err, ErrInvalidOptions, "length %d", length)
	}
}

// TestGenerate_SuccessiveCallsDiffer is statistical: two 8+ character draws
// from the full alphabet collide with negligible probability.
func TestGenerate_SuccessiveCallsDiffer(t *testing.T) {
	opts := models.DefaultGeneratorOptions()

	first, err := Generate(opts)
	require.NoError(t, err)
	second, err := Generate(opts)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestGenerate_AllClassesAppearEventually draws a long password from all
// classes and checks every class is represented. With length 512 the odds of
// a missing class are negligible.
func TestGenerate_AllClassesAppearEventually(t *testing.T) {
	opts := models.DefaultGeneratorOptions()
	opts.Length = 64

	var combined strings.Builder
	for i := 0; i < 8; i++ {
		got, err := Generate(opts)
		require.NoError(t, err)
		combined.WriteString(got)
	}

	all := combined.String()
	assert.True(t, strings.ContainsAny(all, uppercaseAlphabet), "no uppercase in %d draws", len(all))
	assert.True(t, strings.ContainsAny(all, lowercaseAlphabet), "no lowercase in %d draws", len(all))
	assert.True(t, strings.ContainsAny(all, numbersAlphabet), "no numbers in %d draws", len(all))
	assert.True(t, strings.ContainsAny(all, symbolsAlphabet), "no symbols in %d draws", len(all))
}
