package service

import (
	"context"
	"encoding/json"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/repository"

	"gorm.io/datatypes"
)

type UserService struct {
	users     repository.UserRepository
	auditLogs repository.AuditLogRepository

	auth         *AuthService
	accounts     repository.AccountRepository
	passwordHash PasswordHasher
}

func NewUserService(
	users repository.UserRepository,
	accounts repository.AccountRepository,
	auditLogs repository.AuditLogRepository,
	auth *AuthService,
	passwordHash PasswordHasher,
) *UserService {
	return &UserService{
		users:        users,
		accounts:     accounts,
		auditLogs:    auditLogs,
		auth:         auth,
		passwordHash: passwordHash,
	}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.users.List(ctx)
}

// Create delegates to the sign-up flow so the credential account row is
// created alongside the user, exactly like self-service registration.
func (s *UserService) Create(ctx context.Context, input dto.SignUpRequest) (*entity.User, error) {
	return s.auth.SignUp(ctx, input)
}

func (s *UserService) Update(ctx context.Context, id string, input dto.UserUpdateRequest) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Status != nil {
		user.Status = entity.UserStatus(*input.Status)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	// Password rotation side channel: hash and rewrite the credential
	// account row, never the user row.
	if input.Password != nil && *input.Password != "" {
		hash, err := s.passwordHash.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		if err := s.accounts.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Delete is a no-op for unknown ids; the admin UI treats delete as
// idempotent.
func (s *UserService) Delete(ctx context.Context, id string, ipAddress *string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if s.auditLogs != nil {
		metadata, _ := json.Marshal(map[string]any{"deleted_user_id": id})
		_ = s.auditLogs.Create(ctx, &entity.AuditLog{
			IPAddress: ipAddress,
			Action:    entity.UserDeleted,
			Metadata:  datatypes.JSON(metadata),
		})
	}
	return nil
}
