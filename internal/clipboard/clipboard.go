// Package clipboard wraps the system clipboard behind a small interface so
// services can copy secrets without depending on the host environment.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// ErrClipboard is returned when the system clipboard is unavailable or the
// write fails.
var ErrClipboard = errors.New("clipboard error")

// Clipboard copies text to the host clipboard.
type Clipboard interface {
	Copy(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by the OS clipboard.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}
