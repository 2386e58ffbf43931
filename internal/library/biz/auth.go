package biz

import (
	"context"
	"strconv"
	"strings"

	"github.com/kart-io/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/pkg/auth"
	"github.com/luminalib/luminalib/pkg/errors"
)

// AuthService handles signup, login, and token resolution.
type AuthService struct {
	store store.Factory
	authn auth.Authenticator
}

// NewAuthService creates the auth service.
func NewAuthService(s store.Factory, authn auth.Authenticator) *AuthService {
	return &AuthService{store: s, authn: authn}
}

// Signup registers a new member account.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.ErrInvalidParam.WithMessage("email and password are required")
	}

	if _, err := s.store.Users().GetByEmail(ctx, email); err == nil {
		return nil, errors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}

	user := &model.User{
		Email:          email,
		HashedPassword: string(hash),
		Role:           model.RoleMember,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}

	logger.Infow("User registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrInvalidCredentials
		}
		return "", errors.ErrDatabase.WithCause(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.authn.Sign(strconv.FormatUint(user.ID, 10))
	if err != nil {
		return "", errors.ErrInternal.WithCause(err)
	}
	return token, nil
}

// UserFromToken resolves the account behind a bearer token.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*model.User, error) {
	subject, err := s.authn.Verify(token)
	if err != nil {
		return nil, errors.ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return nil, errors.ErrTokenInvalid
	}

	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTokenInvalid
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return user, nil
}
