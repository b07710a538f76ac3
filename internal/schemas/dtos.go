package schemas

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// RegisterResult is the outcome of a registration attempt.
// Success tells whether the user was created, Message carries the outcome text.
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResult is the outcome of a login attempt.
// Username and AccessToken are only set on success.
type LoginResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Username    string `json:"username,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// VerifyEmailResult is the outcome of an email verification attempt.
type VerifyEmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserDTO is a struct that represents a user response
// Username is the username of the user
// Email is the email of the user
// Verified tells whether the user has confirmed their email address
type UserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// GetUserResponse wraps a user DTO for the get-user endpoint.
type GetUserResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// MetadataDTO describes the running API instance.
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}
