package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"
)

var (
	ErrInvalidMobile      = errors.New("mobile must be a 10-digit number")
	ErrInvalidCredentials = errors.New("invalid mobile or password")
	ErrMissingSignupField = errors.New("name, mobile and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already registered")
)

// AuthResult is a login outcome: the profile plus provider tokens.
type AuthResult struct {
	User        entities.User
	AccessToken string
	IDToken     string
}

// IAuthUseCase covers registration and login against the identity provider.
// Credentials pass straight through to the provider; the Users table stores
// profile data only.

type IAuthUseCase interface {
	Register(ctx context.Context, name, mobile, password, userType string) (entities.User, error)
	Login(ctx context.Context, mobile, password string) (AuthResult, error)
	GetUser(ctx context.Context, userID string) (entities.User, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	identity interfaces.IIdentityProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, identity interfaces.IIdentityProvider) *AuthUseCase {
	return &AuthUseCase{users: users, identity: identity}
}

func (u *AuthUseCase) Register(ctx context.Context, name, mobile, password, userType string) (entities.User, error) {
	name = strings.TrimSpace(name)
	mobile = strings.TrimSpace(mobile)
	password = strings.TrimSpace(password)
	if name == "" || mobile == "" || password == "" {
		return entities.User{}, ErrMissingSignupField
	}
	if !isTenDigitMobile(mobile) {
		return entities.User{}, ErrInvalidMobile
	}
	userType = strings.TrimSpace(userType)
	if userType == "" {
		userType = "resident"
	}

	userID, err := u.identity.CreateAccount(ctx, name, mobile, password)
	if err != nil {
		if errors.Is(err, interfaces.ErrAccountExists) {
			return entities.User{}, ErrUserAlreadyExists
		}
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        userID,
		Name:      name,
		Mobile:    mobile,
		UserType:  userType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.User{}, ErrUserAlreadyExists
		}
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] user registered user_id=%s", created.ID)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, mobile, password string) (AuthResult, error) {
	mobile = strings.TrimSpace(mobile)
	password = strings.TrimSpace(password)
	if mobile == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !isTenDigitMobile(mobile) {
		return AuthResult{}, ErrInvalidMobile
	}

	session, err := u.identity.Authenticate(ctx, mobile, password)
	if err != nil {
		if errors.Is(err, interfaces.ErrBadCredentials) {
			return AuthResult{}, ErrInvalidCredentials
		}
		if errors.Is(err, interfaces.ErrAccountNotFound) {
			return AuthResult{}, ErrUserNotFound
		}
		return AuthResult{}, err
	}

	user, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		// Provider account without a profile row; fall back to provider data
		// instead of failing the login.
		user = entities.User{ID: session.UserID, Name: session.DisplayName, Mobile: mobile}
	}

	log.Printf("[auth][usecase] login ok user_id=%s", user.ID)
	return AuthResult{User: user, AccessToken: session.AccessToken, IDToken: session.IDToken}, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func isTenDigitMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
