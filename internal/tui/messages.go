package tui

import "github.com/securevault/securevault/models"

// NavigateTo switches the router to another page. Payload, when non-nil, is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

type authResultMsg struct {
	session models.Session
	err     error
}

type setupResultMsg struct {
	session models.Session
	err     error
}

type enrollmentReadyMsg struct {
	secret string
	url    string
	err    error
}

type vaultLoadedMsg struct {
	err error
}

type vaultSavedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type generatedMsg struct {
	password string
	err      error
}

type logoutDoneMsg struct {
	err error
}

type breachScanMsg struct {
	compromised int
	err         error
}
