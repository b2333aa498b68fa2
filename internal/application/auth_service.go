package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spendario/spendario-api/internal/domain/entity"
	repo "github.com/spendario/spendario-api/internal/domain/repository"
	"github.com/spendario/spendario-api/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService covers registration and login. The token it hands out is the
// only session state in the system; nothing is stored server-side.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates the account and immediately issues an access token.
// A taken email surfaces as ErrEmailTaken; email existence is already being
// asserted by the caller, so this is not an enumeration leak.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*entity.User, string, time.Time, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	u := &entity.User{Email: email, Password: hash, FullName: fullName}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, "", time.Time{}, ErrEmailTaken
		}
		s.Logger.WithError(err).Error("create user failed")
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Login validates email/password and issues an access token. Unknown email
// and wrong password collapse to the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
