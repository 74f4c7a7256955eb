package service

import (
	"context"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/repository"
)

type CompanySettingsService struct {
	settings repository.CompanySettingsRepository
}

func NewCompanySettingsService(settings repository.CompanySettingsRepository) *CompanySettingsService {
	return &CompanySettingsService{settings: settings}
}

// Get returns nil (not an error) when the row was never written; the
// handler renders that as an empty object.
func (s *CompanySettingsService) Get(ctx context.Context) (*entity.CompanySettings, error) {
	return s.settings.Get(ctx)
}

func (s *CompanySettingsService) Save(ctx context.Context, input dto.CompanySettingsRequest) (*entity.CompanySettings, error) {
	settings := input.ToEntity()
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return s.settings.Get(ctx)
}
