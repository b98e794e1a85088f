package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"internconnect/internal/domain"
	"internconnect/internal/store"
	"internconnect/internal/token"
)

// UsersKey is the storage key of the users collection.
const UsersKey = "internconnect_users_v2"

var (
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates no user matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles identity registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) error
	Login(ctx context.Context, email, password string) (*domain.SessionUser, error)
}

type authService struct {
	users   *store.Collection[domain.User]
	tokens  *token.Issuer
	latency time.Duration
}

func NewAuthService(kv store.KV, tokens *token.Issuer, latency time.Duration) AuthService {
	return &authService{
		users:   store.NewCollection[domain.User](kv, UsersKey),
		tokens:  tokens,
		latency: latency,
	}
}

// Register stores a new user with an obfuscated password. Emails are
// matched case-sensitively with no normalization. The created user is not
// returned; callers log in separately.
func (s *authService) Register(ctx context.Context, name, email, password string, role domain.Role) error {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}

	users, err := s.users.Read(ctx, nil)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}

	users = append(users, domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: obfuscate(password),
		Role:     role,
	})
	return s.users.Write(ctx, users)
}

// Login verifies credentials against the stored obfuscated password and
// synthesizes a session token encoding the user's id and role. The token's
// embedded fields are never re-validated against storage afterwards.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.SessionUser, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	users, err := s.users.Read(ctx, nil)
	if err != nil {
		return nil, err
	}

	obfuscated := obfuscate(password)
	for _, u := range users {
		if u.Email != email || u.Password != obfuscated {
			continue
		}
		signed, err := s.tokens.Issue(u.ID, u.Role)
		if err != nil {
			return nil, fmt.Errorf("issue token: %w", err)
		}
		return &domain.SessionUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			Token:        signed,
			ProfileImage: avatarURL(u.Name),
		}, nil
	}
	return nil, ErrInvalidCredentials
}

// obfuscate reversibly encodes a password for storage. Deliberately not a
// cryptographic hash: the stored form must compare equal for the same
// input and round-trip back to cleartext.
func obfuscate(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(strings.TrimSpace(name)) + "&background=random"
}
