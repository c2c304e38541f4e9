// Package notify defines the user-feedback collaborator used by services to
// surface success and failure messages without knowing about the UI.
package notify

import "github.com/securevault/securevault/internal/logger"

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// Notifier receives user-facing feedback messages.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes messages to the client log.
// Background workers use it to report findings outside the TUI event loop.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Success(message string) {
	n.logger.Info().Str("kind", "success").Msg(message)
}

func (n *logNotifier) Error(message string) {
	n.logger.Warn().Str("kind", "error").Msg(message)
}

func (n *logNotifier) Info(message string) {
	n.logger.Info().Str("kind", "info").Msg(message)
}
