package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

const (
	// sessionTokenBytes gives 256 bits of entropy; collisions are not a
	// practical concern but a store-level duplicate still triggers one retry.
	sessionTokenBytes = 32
	defaultSessionTTL = 7 * 24 * time.Hour
)

// AuthService implements signup, login, and bearer-token resolution backed by
// opaque server-side sessions.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
	dummyHash  []byte
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	// Compared against when login hits an unknown email, so that path does the
	// same work as a wrong password and the two stay indistinguishable.
	dummy, err := bcrypt.GenerateFromPassword([]byte("socialhub-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("auth: dummy hash: %v", err))
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		dummyHash:  dummy,
		logger:     logger,
	}
}

// Signup creates a user on the free plan and opens a session for it.
// A duplicate email surfaces as domain.ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Plan:         domain.PlanFree,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.createSession(ctx, created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	return token, created, nil
}

// Login verifies credentials and opens a fresh session. Unknown email and
// wrong password both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Resolve maps a bearer token to its user. Expired sessions fail terminally
// with domain.ErrSessionExpired and stay in storage; there is no revocation
// path and no auto-renewal.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	sess, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if sess.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Dangling session for a deleted account.
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, userID string) (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := newSessionToken()
		if err != nil {
			return "", err
		}

		now := time.Now().UTC()
		sess := &domain.Session{
			Token:     token,
			UserID:    userID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.sessionTTL),
		}

		err = s.sessions.Create(ctx, sess)
		if errors.Is(err, domain.ErrDuplicateToken) {
			s.logger.Warn().Str("user_id", userID).Msg("session token collision, retrying")
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}
	return "", domain.ErrDuplicateToken
}

// newSessionToken returns a URL-safe opaque token with 256 bits of entropy.
func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
