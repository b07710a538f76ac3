package usecases

import (
	"context"

	"account-service/internal/managers"
	"account-service/internal/schemas"
	"account-service/internal/stores"
)

// LoginUseCase verifies a user's credentials and mints a short-lived access token.
// It keeps no state between calls, there is no lockout or attempt counting.
type LoginUseCase struct {
	userStore      stores.UserStore
	passwordHasher managers.PasswordHasher
	jwtManager     managers.JWTMgr
}

// NewLoginUseCase creates a new LoginUseCase with the given collaborators.
func NewLoginUseCase(userStore stores.UserStore, passwordHasher managers.PasswordHasher, jwtManager managers.JWTMgr) *LoginUseCase {
	return &LoginUseCase{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Execute looks up the user by email, compares the password against the stored
// hash and mints an access token on success. An absent user and a user record
// without an id both fail closed with the same outcome.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (schemas.LoginResult, error) {
	user, err := uc.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		return schemas.LoginResult{}, err
	}

	if user == nil || user.ID == "" {
		return schemas.LoginResult{Success: false, Message: "User not found"}, nil
	}

	if !uc.passwordHasher.Compare(password, user.Password) {
		return schemas.LoginResult{Success: false, Message: "Incorrect user or password"}, nil
	}

	accessToken, err := uc.jwtManager.GenerateToken(user.ID, schemas.TokenPurposeAccess)
	if err != nil {
		return schemas.LoginResult{}, err
	}

	return schemas.LoginResult{
		Success:     true,
		Message:     "Logged in successfully",
		Username:    user.Username,
		AccessToken: accessToken,
	}, nil
}
