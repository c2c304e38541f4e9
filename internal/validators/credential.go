package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/securevault/securevault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the display name of a vault record.
	FieldTitle = "title"

	// FieldUsername targets the account name of a vault record.
	FieldUsername = "username"

	// FieldPassword targets the secret of a vault record.
	FieldPassword = "password"
)

// Length caps for user-supplied credential fields.
const (
	maxTitleLen    = 50
	maxUsernameLen = 50
	maxPasswordLen = 64
)

// CredentialValidator implements the Validator interface for
// [models.CredentialInput]. It enforces the required-field rules for vault
// record creation plus the input hygiene rules of the product: length caps
// and a ban on control characters.
//
// It supports both value and pointer inputs and allows optional field-level
// scoping via variadic field name arguments.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator and returns it
// as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation based on the dynamic type of input.
// With no field arguments, all fields are validated.
func (v *CredentialValidator) Validate(ctx context.Context, input any, fields ...string) error {
	switch in := input.(type) {
	case models.CredentialInput:
		return v.validateInput(in, fields...)
	case *models.CredentialInput:
		return v.validateInput(*in, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}
}

func (v *CredentialValidator) validateInput(in models.CredentialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldTitle:
			err = checkField(in.Title, maxTitleLen, ErrEmptyTitle, ErrTitleTooLong)
		case FieldUsername:
			err = checkField(in.Username, maxUsernameLen, ErrEmptyUsername, ErrUsernameTooLong)
		case FieldPassword:
			err = checkField(in.Password, maxPasswordLen, ErrEmptyPassword, ErrPasswordTooLong)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}

func checkField(value string, maxLen int, emptyErr, tooLongErr error) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return emptyErr
	}
	if len(trimmed) > maxLen {
		return tooLongErr
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return ErrUnsafeCharacters
		}
	}
	return nil
}
