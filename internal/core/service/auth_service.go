package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

// AuthService orchestrates signup and signin. All collaborators are passed
// in explicitly; the service holds no ambient state beyond them.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditSink
	// minPasswordLen is a configuration policy on top of the mandatory
	// non-empty check. Zero disables it.
	minPasswordLen int
	logger         zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, audit ports.AuditSink, minPasswordLen int, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:          users,
		hasher:         hasher,
		tokens:         tokens,
		audit:          audit,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

// SignUp validates the input, checks email uniqueness, hashes the password
// and persists the account. The persisted role is always RoleUser no matter
// what the caller supplied; privilege escalation at signup is impossible.
//
// The uniqueness check and the insert are not atomic here; the repository's
// unique index closes that window and surfaces as domain.ErrEmailExists.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, fmt.Errorf("username, password and email are required: %w", domain.ErrInvalidInput)
	}
	if s.minPasswordLen > 0 && len(input.Password) < s.minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters: %w", s.minPasswordLen, domain.ErrInvalidInput)
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("account created")
	s.record(domain.AuditRecord{
		ActorID: created.ID,
		Actor:   created.Username,
		Action:  domain.AuditSignUp,
		Subject: created.Email,
	})
	return created, nil
}

// SignIn looks up the account, verifies the password and issues a token. A
// missing account and a wrong password both return ErrInvalidCredentials so
// callers cannot probe which emails are registered.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("signin for unknown email")
			s.record(domain.AuditRecord{Action: domain.AuditSignInFailed, Subject: email})
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.logger.Debug().Str("user_id", user.ID).Msg("signin with wrong password")
		s.record(domain.AuditRecord{Action: domain.AuditSignInFailed, Subject: email})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("signin succeeded")
	s.record(domain.AuditRecord{
		ActorID: user.ID,
		Actor:   user.Username,
		Action:  domain.AuditSignIn,
	})
	return token, user, nil
}

func (s *AuthService) record(record domain.AuditRecord) {
	if s.audit == nil {
		return
	}
	record.ID = uuid.NewString()
	record.Timestamp = time.Now().UTC()
	s.audit.Record(record)
}
