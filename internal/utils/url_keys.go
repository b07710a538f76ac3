package utils

const (
	// UsernameKey is the key for username used in routing parameters.
	UsernameKey = "username"

	// TokenKey is the key for the verification token used in routing parameters.
	TokenKey = "token"
)
