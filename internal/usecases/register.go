// Package usecases contains the business transactions of the service. Each use case
// composes the stores and managers into a single operation with a fixed outcome
// contract: business outcomes are returned as result values, system faults as errors.
package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"account-service/internal/managers"
	"account-service/internal/schemas"
	"account-service/internal/stores"
)

const verificationTokenLifetime = 7 * 24 * time.Hour

// RegisterUseCase creates a new user account and kicks off email verification.
type RegisterUseCase struct {
	userStore      stores.UserStore
	tokenStore     stores.TokenStore
	passwordHasher managers.PasswordHasher
	jwtManager     managers.JWTMgr
	mailManager    managers.MailMgr
	now            func() time.Time
}

// NewRegisterUseCase creates a new RegisterUseCase with the given collaborators.
func NewRegisterUseCase(userStore stores.UserStore, tokenStore stores.TokenStore, passwordHasher managers.PasswordHasher,
	jwtManager managers.JWTMgr, mailManager managers.MailMgr) *RegisterUseCase {
	return &RegisterUseCase{
		userStore:      userStore,
		tokenStore:     tokenStore,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		mailManager:    mailManager,
		now:            time.Now,
	}
}

// Execute registers a new user. It checks uniqueness of username and email, hashes
// the password, persists the user, mints and persists an email verification token
// and hands the token to the mail collaborator. The existence pre-check and the
// insert are not wrapped in a transaction, so concurrent registrations can both
// pass the pre-check; the store's unique constraint is the actual safety net and
// its violation is treated as the same already-exists outcome.
func (uc *RegisterUseCase) Execute(ctx context.Context, email, username, password string) (schemas.RegisterResult, error) {
	var (
		usernameExists, emailExists bool
		usernameErr, emailErr       error
		wg                          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		usernameExists, usernameErr = uc.userStore.UserExistsByUsername(ctx, username)
	}()
	go func() {
		defer wg.Done()
		emailExists, emailErr = uc.userStore.UserExistsByEmail(ctx, email)
	}()
	wg.Wait()

	if usernameErr != nil {
		return schemas.RegisterResult{}, usernameErr
	}
	if emailErr != nil {
		return schemas.RegisterResult{}, emailErr
	}

	// Which of the two fields collided is deliberately not disclosed.
	if usernameExists || emailExists {
		return schemas.RegisterResult{Success: false, Message: "User already exists"}, nil
	}

	hashedPassword, err := uc.passwordHasher.Hash(password)
	if err != nil {
		return schemas.RegisterResult{}, err
	}

	user := &schemas.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Verified: false,
	}

	createdUser, err := uc.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, stores.ErrUserExists) {
			return schemas.RegisterResult{Success: false, Message: "User already exists"}, nil
		}
		return schemas.RegisterResult{}, err
	}

	if createdUser.ID == "" {
		return schemas.RegisterResult{Success: false, Message: "An error occured while creating user"}, nil
	}

	token, err := uc.jwtManager.GenerateToken(createdUser.ID, schemas.TokenPurposeEmailVerification)
	if err != nil {
		return schemas.RegisterResult{}, err
	}

	verificationToken := &schemas.VerificationToken{
		UserID:    createdUser.ID,
		Token:     token,
		ExpiresAt: uc.now().Add(verificationTokenLifetime),
		Purpose:   schemas.TokenPurposeEmailVerification,
	}

	if err := uc.tokenStore.Create(ctx, verificationToken); err != nil {
		return schemas.RegisterResult{}, err
	}

	// A failed mail delivery does not roll back the registration. The user can
	// still request the mail again through support, the account itself is valid.
	if err := uc.mailManager.SendVerificationMail(createdUser.Email, token); err != nil {
		log.Warning("Error sending verification mail: " + err.Error())
	}

	return schemas.RegisterResult{Success: true, Message: "User created successfully"}, nil
}
