package usecases

import (
	"context"

	"account-service/internal/schemas"
	"account-service/internal/stores"
)

// GetUserUseCase looks up a user profile by username.
type GetUserUseCase struct {
	userStore stores.UserStore
}

// NewGetUserUseCase creates a new GetUserUseCase with the given store.
func NewGetUserUseCase(userStore stores.UserStore) *GetUserUseCase {
	return &GetUserUseCase{userStore: userStore}
}

// Execute returns the user with the given username, or nil if no such user exists.
func (uc *GetUserUseCase) Execute(ctx context.Context, username string) (*schemas.User, error) {
	return uc.userStore.GetUserByUsername(ctx, username)
}
