package models

import "time"

// Credential is one stored secret record owned by the vault. The plaintext
// fields exist only in memory; the persisted form is an encrypted snapshot
// of the whole collection.
type Credential struct {
	// ID is the unique identifier assigned at creation time. Never reused.
	ID string `json:"id"`

	// Title is the display name of the record (e.g. "Gmail"). Required.
	Title string `json:"title"`

	// Username is the account name for the service. Required.
	Username string `json:"username"`

	// Email is an optional contact address associated with the account.
	Email string `json:"email,omitempty"`

	// Password is the stored secret. Required.
	Password string `json:"password"`

	// Website is the optional URL of the service.
	Website string `json:"website,omitempty"`

	// Notes holds optional free-form text.
	Notes string `json:"notes,omitempty"`

	// Category is an optional user-chosen grouping label.
	Category string `json:"category,omitempty"`

	// CreatedAt is set once at creation and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`

	// IsCompromised is set by the breach-check collaborator when the
	// password appears in a known breach corpus. Never inferred locally.
	IsCompromised bool `json:"is_compromised,omitempty"`
}

// CredentialInput carries the user-supplied fields for creating a vault
// record. ID and timestamps are assigned by the vault, not the caller.
type CredentialInput struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Website  string `json:"website,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`
}
