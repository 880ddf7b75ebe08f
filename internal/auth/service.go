package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session is returned on register, login and refresh.
type Session struct {
	Token        string
	RefreshToken string
	User         models.User
}

type Service struct {
	users      repo.UserRepository
	issuer     *Issuer
	refresh    RefreshStore
	refreshTTL time.Duration
}

func NewService(users repo.UserRepository, issuer *Issuer, refresh RefreshStore, refreshTTL time.Duration) *Service {
	return &Service{users: users, issuer: issuer, refresh: refresh, refreshTTL: refreshTTL}
}

func (s *Service) Issuer() *Issuer { return s.issuer }

func (s *Service) Register(ctx context.Context, email, password, name string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	switch {
	case email == "" || password == "" || name == "":
		return Session{}, fmt.Errorf("%w: email, password and name are required", ErrInvalidInput)
	case !validEmail(email):
		return Session{}, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	case len(password) < 6:
		return Session{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	user, err := s.createUser(ctx, email, password, name)
	if err != nil {
		return Session{}, err
	}
	return s.newSession(ctx, user)
}

func (s *Service) createUser(ctx context.Context, email, password, name string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := s.users.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, ErrEmailTaken
	}
	return user, err
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.newSession(ctx, user)
}

// Refresh rotates a refresh token: the old one stops working.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	email, err := s.refresh.Consume(ctx, refreshToken)
	if err != nil {
		return Session{}, err
	}
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return Session{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return Session{}, err
	}
	return s.newSession(ctx, user)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.refresh.Revoke(ctx, refreshToken)
}

// EnsureAdmin creates the admin account when no user has that email yet.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}
	if _, err := s.createUser(ctx, strings.ToLower(email), password, name); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) newSession(ctx context.Context, user models.User) (Session, error) {
	token, err := s.issuer.GenerateToken(user)
	if err != nil {
		return Session{}, fmt.Errorf("failed to generate token: %w", err)
	}
	refreshToken := uuid.NewString()
	if err := s.refresh.Save(ctx, refreshToken, user.Email, s.refreshTTL); err != nil {
		return Session{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return Session{Token: token, RefreshToken: refreshToken, User: user}, nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
