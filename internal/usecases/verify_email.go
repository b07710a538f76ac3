package usecases

import (
	"context"
	"time"

	"account-service/internal/managers"
	"account-service/internal/schemas"
	"account-service/internal/stores"
)

// VerifyEmailUseCase confirms a user's email address using a previously issued
// verification token. The token is consumed on success.
type VerifyEmailUseCase struct {
	jwtManager managers.JWTMgr
	tokenStore stores.TokenStore
	userStore  stores.UserStore
	now        func() time.Time
}

// NewVerifyEmailUseCase creates a new VerifyEmailUseCase with the given collaborators.
func NewVerifyEmailUseCase(jwtManager managers.JWTMgr, tokenStore stores.TokenStore, userStore stores.UserStore) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		jwtManager: jwtManager,
		tokenStore: tokenStore,
		userStore:  userStore,
		now:        time.Now,
	}
}

// Execute checks the token signature, looks up the persisted token record, checks
// its expiry, flags the user as verified and deletes the record. A missing record
// and an expired one are reported with the same message. The deletion boolean is
// the reported success of the whole operation: when two concurrent calls race past
// the expiry check, only the one whose delete removed the record reports success,
// and a false deletion yields a bare failure even though the user was already
// flagged verified.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) (schemas.VerifyEmailResult, error) {
	userId, valid := uc.jwtManager.VerifyToken(token)
	if !valid {
		return schemas.VerifyEmailResult{Success: false, Message: "Invalid token"}, nil
	}

	storedToken, err := uc.tokenStore.Find(ctx, token, userId)
	if err != nil {
		return schemas.VerifyEmailResult{}, err
	}

	if storedToken == nil || storedToken.ExpiresAt.Before(uc.now()) {
		return schemas.VerifyEmailResult{Success: false, Message: "Token is either expired or not found"}, nil
	}

	verified := true
	if err := uc.userStore.Update(ctx, userId, schemas.UserUpdate{Verified: &verified}); err != nil {
		return schemas.VerifyEmailResult{}, err
	}

	deleted, err := uc.tokenStore.Delete(ctx, storedToken.Token)
	if err != nil {
		return schemas.VerifyEmailResult{}, err
	}

	return schemas.VerifyEmailResult{Success: deleted}, nil
}
