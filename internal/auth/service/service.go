package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"lawpoint/internal/auth/models"
	"lawpoint/internal/auth/password"
	"lawpoint/internal/auth/store"
	"lawpoint/internal/platform/metrics"
	dErrors "lawpoint/pkg/domain-errors"
	"lawpoint/pkg/email"
	"lawpoint/pkg/platform/sentinel"
)

// TokenIssuer is the slice of the token service signup and login need.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// Service orchestrates signup, login and identity lookup. It is stateless
// across requests: no record is cached, no session continuity exists beyond
// the token itself. Each step is sequential with a typed short-circuit on the
// first failure.
type Service struct {
	users   store.UserStore
	hasher  *password.Hasher
	tokens  TokenIssuer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(users store.UserStore, hasher *password.Hasher, tokens TokenIssuer, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger,
		metrics: m,
	}
}

// Signup creates an account and returns a fresh session token.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResult, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "please provide email, password, and name")
	}

	normalized := email.Normalize(req.Email)
	if !email.IsValid(normalized) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid email address")
	}

	_, err := s.users.FindByEmail(ctx, normalized)
	switch {
	case err == nil:
		return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
	case !errors.Is(err, sentinel.ErrNotFound):
		s.logger.ErrorContext(ctx, "signup lookup failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not create user")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hashing failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not create user")
	}

	user, err := s.users.Insert(ctx, models.User{
		Email:        normalized,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
	})
	if err != nil {
		// The store's uniqueness check is the authority; a racer that passed
		// the pre-check still loses here.
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		s.logger.ErrorContext(ctx, "signup insert failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not create user")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "token issuance failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not create user")
	}

	s.metrics.SignupsTotal.Inc()
	return &models.AuthResult{Token: token, User: user.Public()}, nil
}

// Login verifies credentials and returns a fresh session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "please provide email and password")
	}

	user, err := s.users.FindByEmail(ctx, email.Normalize(req.Email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeInvalidCredentials, "invalid credentials")
		}
		s.logger.ErrorContext(ctx, "login lookup failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not log in")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, dErrors.New(dErrors.CodeInvalidCredentials, "invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "token issuance failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not log in")
	}

	s.metrics.LoginsTotal.Inc()
	return &models.AuthResult{Token: token, User: user.Public()}, nil
}

// CurrentUser resolves the account behind an already-verified token subject.
// A miss is defensive: no delete exists in this system, but a token minted
// against the durable store can outlive a fallback switch.
func (s *Service) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.PublicUser{}, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		s.logger.ErrorContext(ctx, "current user lookup failed", "error", err)
		return models.PublicUser{}, dErrors.New(dErrors.CodeInternal, "could not load user")
	}
	return user.Public(), nil
}
