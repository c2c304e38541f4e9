package models

// Password length bounds accepted by the generator.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
)

// GeneratorOptions describes the character classes and length of a password
// to be produced by the generator. At least one class flag must be true.
type GeneratorOptions struct {
	// Length is the exact number of characters to produce. Valid range is
	// [MinPasswordLength, MaxPasswordLength] inclusive.
	Length int `json:"length"`

	// UseUppercase enables A-Z.
	UseUppercase bool `json:"use_uppercase"`

	// UseLowercase enables a-z.
	UseLowercase bool `json:"use_lowercase"`

	// UseNumbers enables 0-9.
	UseNumbers bool `json:"use_numbers"`

	// UseSymbols enables the special character alphabet.
	UseSymbols bool `json:"use_symbols"`
}

// HasAnyClass reports whether at least one character class is enabled.
func (o GeneratorOptions) HasAnyClass() bool {
	return o.UseUppercase || o.UseLowercase || o.UseNumbers || o.UseSymbols
}

// DefaultGeneratorOptions returns the options preselected in the UI:
// 16 characters drawn from all four classes.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:       16,
		UseUppercase: true,
		UseLowercase: true,
		UseNumbers:   true,
		UseSymbols:   true,
	}
}
