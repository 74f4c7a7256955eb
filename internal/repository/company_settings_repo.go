package repository

import (
	"context"
	"errors"
	"time"

	"imobia/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanySettingsRepository interface {
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Upsert(ctx context.Context, settings *entity.CompanySettings) error
}

type companySettingsRepository struct {
	db *gorm.DB
}

func NewCompanySettingsRepository(db *gorm.DB) CompanySettingsRepository {
	return &companySettingsRepository{db: db}
}

func (r *companySettingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settings entity.CompanySettings
	err := r.db.WithContext(ctx).
		Where("id = ?", entity.CompanySettingsID).
		First(&settings).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// Upsert writes the singleton row, inserting on first save and updating
// every column on conflict. created_at survives updates.
func (r *companySettingsRepository) Upsert(ctx context.Context, settings *entity.CompanySettings) error {
	settings.ID = entity.CompanySettingsID
	settings.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nome_fantasia", "razao_social", "cnpj", "inscricao_estadual", "creci",
				"cep", "logradouro", "numero", "complemento", "bairro", "cidade", "uf",
				"email", "telefone", "instagram", "facebook", "tiktok", "whatsapp", "logo",
				"updated_at",
			}),
		}).
		Create(settings).Error
}
