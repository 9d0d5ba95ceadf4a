// Package users implements the credential store and the stateless token
// service: registration, password verification, token issuance, and
// resolving a presented token back to its owning user.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivanosipov/wordvault/internal/common"
	"github.com/ivanosipov/wordvault/internal/server/auth"
	"github.com/ivanosipov/wordvault/internal/server/config"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int

	// dummyHash is compared against when the username is unknown so the
	// unknown-user and wrong-password paths cost the same.
	dummyHash []byte
}

func NewService(repo Repository, cfg *config.Config) (*Service, error) {

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("wordvault-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy hash: %w", err)
	}

	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cost,
		dummyHash:                   dummyHash,
	}, nil
}

// Register creates a new account with a bcrypt-hashed password. The username
// is case-sensitive and must be unique; a collision fails with
// common.ErrorAlreadyExists and leaves the existing account untouched.
func (s *Service) Register(ctx context.Context, username string, password []byte) (*User, error) {

	if username == "" {
		return nil, common.ErrorEmptyUsername
	}
	if len(password) == 0 {
		return nil, common.ErrorEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		UserName:     username,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed access token. Unknown
// username and wrong password are indistinguishable to the caller: both fail
// with common.ErrorUnauthorized, and the unknown-username path still runs a
// bcrypt comparison so the failures cost the same.
func (s *Service) Login(ctx context.Context, username string, password []byte) (string, error) {

	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, password)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), password); err != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolveToken validates a presented access token and resolves its subject
// to an existing user. Signature, expiry, and subject-resolution failures
// surface as distinct sentinels (common.ErrInvalidToken,
// common.ErrTokenExpired, common.ErrUnknownSubject); the transport collapses
// them into one unauthenticated response.
func (s *Service) ResolveToken(ctx context.Context, tokenString string) (*User, error) {

	userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownSubject
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
