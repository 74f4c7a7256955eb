package service

import (
	"context"
	"encoding/json"
	"strings"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/repository"
	"imobia/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

// normalizeEmail is applied on every path that stores or looks up an
// email, so the unique index always sees the lowercased form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AuthService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	accounts  repository.AccountRepository
	auditLogs repository.AuditLogRepository

	passwordHash PasswordHasher
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	accounts repository.AccountRepository,
	auditLogs repository.AuditLogRepository,
	passwordHash PasswordHasher,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		accounts:     accounts,
		auditLogs:    auditLogs,
		passwordHash: passwordHash,
		clock:        clock,
		config:       config,
	}
}

// SignUp creates the user plus its linked credential account row. No
// session is started; sign-in is a separate step.
func (s *AuthService) SignUp(ctx context.Context, input dto.SignUpRequest) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	status := entity.UserStatusActive
	if input.Status != "" {
		status = entity.UserStatus(input.Status)
	}
	user := &entity.User{
		ID:     uuid.NewString(),
		Name:   input.Name,
		Email:  email,
		Status: status,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	account := &entity.Account{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		ProviderID: entity.ProviderCredential,
		AccountID:  email,
		Password:   &hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return user, nil
}

type SignInResult struct {
	User    *entity.User
	Session *entity.Session
	Token   string
}

// SignIn checks the account-status gate before touching credentials: an
// inactive account is rejected outright, and an error during that check is
// swallowed so a failing status query never blocks login.
func (s *AuthService) SignIn(ctx context.Context, input dto.SignInRequest, ipAddress *string, userAgent *string) (*SignInResult, error) {
	email := normalizeEmail(input.Email)

	if status, err := s.users.StatusByEmail(ctx, email); err == nil && status == entity.UserStatusInactive {
		s.logAudit(ctx, nil, ipAddress, entity.SignInBlocked, map[string]any{"email": email})
		return nil, ErrAccountInactive
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		s.logAudit(ctx, nil, ipAddress, entity.SignInFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.FindCredentialByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Password == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		s.logAudit(ctx, &user.ID, ipAddress, entity.SignInFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(*account.Password, input.Password) {
		s.logAudit(ctx, &user.ID, ipAddress, entity.SignInFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	result, err := s.StartSession(ctx, user, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, &user.ID, ipAddress, entity.SignInSuccess, nil)
	return result, nil
}

// StartSession issues a fresh opaque session token for an already
// authenticated user. Only the sha256 of the token is persisted.
func (s *AuthService) StartSession(ctx context.Context, user *entity.User, ipAddress *string, userAgent *string) (*SignInResult, error) {
	token, digest, err := utils.NewSessionToken()
	if err != nil {
		return nil, err
	}
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: digest,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: s.clock.Now().Add(s.config.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return &SignInResult{User: user, Session: session, Token: token}, nil
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string, userID *string, ipAddress *string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logAudit(ctx, userID, ipAddress, entity.SignOut, nil)
	return nil
}

// GetSession resolves the cookie token to its session and user, or
// (nil, nil, nil) when the token is unknown or expired.
func (s *AuthService) GetSession(ctx context.Context, token string) (*entity.Session, *entity.User, error) {
	if token == "" {
		return nil, nil, nil
	}
	session, err := s.sessions.FindValidByTokenHash(ctx, utils.HashToken(token))
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, nil
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}
	return session, user, nil
}

// Audit writes are best-effort and never fail the caller.
func (s *AuthService) logAudit(ctx context.Context, userID *string, ipAddress *string, action entity.AuditAction, metadata map[string]any) {
	if s.auditLogs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			payload = datatypes.JSON(data)
		}
	}
	_ = s.auditLogs.Create(ctx, &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	})
}
