// Package schemas defines the data structures
package schemas

import (
	"time"
)

// TokenPurpose describes what a signed token or a persisted verification token
// is allowed to be used for.
type TokenPurpose string

const (
	// TokenPurposeEmailVerification marks tokens minted to confirm a user's email address.
	TokenPurposeEmailVerification TokenPurpose = "EMAIL_VERIFICATION"
	// TokenPurposePasswordReset marks tokens minted for a password reset flow.
	TokenPurposePasswordReset TokenPurpose = "PASSWORD_RESET"
	// TokenPurposeAccess marks short-lived tokens used to authenticate API calls.
	TokenPurposeAccess TokenPurpose = "ACCESS"
)

// User represents the data model for a user in the system.
type User struct {
	ID       string `json:"id"`       // Unique identifier for the user, assigned by the store.
	Username string `json:"username"` // Username of the user, unique across all users.
	Email    string `json:"email"`    // Email address of the user, unique across all users.
	Password string `json:"password"` // Password hash of the user.
	Verified bool   `json:"verified"` // Whether the user has confirmed their email address.
}

// VerificationToken represents a persisted token record associated with a user,
// used for account activation or password reset.
type VerificationToken struct {
	UserID    string       `json:"user_id"`    // Identifier of the user associated with this token.
	Token     string       `json:"token"`      // Signed token string.
	ExpiresAt time.Time    `json:"expires_at"` // Timestamp when the token expires.
	Purpose   TokenPurpose `json:"purpose"`    // What the token may be used for.
}

// UserUpdate carries the fields of a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Verified *bool
}
