package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"todo_api/internal/domain"
	"todo_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password longer than 72 bytes")
)

// RegisterInput holds already validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService owns the user/session lifecycle: register, login, logout, refresh.
type AuthService struct {
	users   UserStore
	tokens  *TokenManager
	revoked RevocationStore
	cost    int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(users UserStore, tokens *TokenManager, revoked RevocationStore, bcryptCost int) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		revoked: revoked,
		cost:    bcryptCost,
	}
}

// Tokens exposes the token manager (TTL is reported to clients).
func (s *AuthService) Tokens() *TokenManager {
	return s.tokens
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login checks credentials and issues a fresh token.
// Unknown email and wrong password both yield ErrInvalidCredentials; on a wrong
// password the matched user is returned with the error so the attempt can be audited.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *IssuedToken, error) {
	u, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return u, nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("generate token: %w", err)
	}
	return u, token, nil
}

// Authenticate validates a bearer token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*Claims, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Refresh issues a new token for the same user and revokes the old one.
func (s *AuthService) Refresh(ctx context.Context, claims *Claims) (*IssuedToken, error) {
	if _, err := s.CurrentUser(ctx, claims.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	token, err := s.tokens.Generate(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	if err := s.Logout(ctx, claims); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// dummy is compared against when the email is unknown so both failure paths cost a bcrypt round.
func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	})
	return s.dummyHash
}

// NormalizeEmail trims and lower-cases an address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
