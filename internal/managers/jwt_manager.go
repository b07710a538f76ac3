package managers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"account-service/internal/schemas"
)

const (
	emailVerificationLifetime = 7 * 24 * time.Hour
	accessTokenLifetime       = time.Hour
)

// JWTMgr handles signed token generation and validation.
type JWTMgr interface {
	GenerateToken(userId string, purpose schemas.TokenPurpose) (string, error)
	VerifyToken(tokenString string) (userId string, valid bool)
}

// JWTManager signs and validates tokens with a process-wide HMAC secret.
// The secret is validated once at construction and immutable afterwards.
type JWTManager struct {
	secret []byte
	now    func() time.Time
}

// NewJWTManager creates a new JWTManager with the given signing secret.
// An empty secret is a configuration error and rejected here rather than at call time.
func NewJWTManager(secret string) (JWTMgr, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret must not be empty")
	}

	log.Info("Initialized JWT manager")
	return &JWTManager{secret: []byte(secret), now: time.Now}, nil
}

// GenerateToken generates a signed token carrying the user id and purpose.
// Email verification tokens are valid for 7 days, every other purpose for 1 hour.
func (jm *JWTManager) GenerateToken(userId string, purpose schemas.TokenPurpose) (string, error) {
	lifetime := accessTokenLifetime
	if purpose == schemas.TokenPurposeEmailVerification {
		lifetime = emailVerificationLifetime
	}

	issuedAt := jm.now()
	claims := jwt.MapClaims{
		"userId":  userId,
		"purpose": string(purpose),
		"iat":     issuedAt.Unix(),
		"exp":     issuedAt.Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jm.secret)
}

// VerifyToken validates the given token and extracts the user id. Every failure
// mode, be it a bad signature, a malformed token or an expired one, collapses
// into valid=false with an empty user id.
func (jm *JWTManager) VerifyToken(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Verify the signing method
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("invalid signing method")
		}

		return jm.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return jm.now() }))

	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	userId, ok := claims["userId"].(string)
	if !ok {
		return "", false
	}

	return userId, true
}
