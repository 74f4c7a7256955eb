package repository

import (
	"context"
	"errors"
	"time"

	"imobia/internal/entity"

	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindCredentialByUserID(ctx context.Context, userID string) (*entity.Account, error)
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindCredentialByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, entity.ProviderCredential).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

// UpdatePassword rewrites the credential row only; other provider rows are
// untouched.
func (r *accountRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("user_id = ? AND provider_id = ?", userID, entity.ProviderCredential).
		Updates(map[string]any{
			"password":   passwordHash,
			"updated_at": time.Now(),
		}).
		Error
}
