package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/repository"

	"github.com/google/uuid"
)

var codePrefixes = map[entity.RealEstateType]string{
	entity.RealEstateHouse:      "CASA",
	entity.RealEstateApartment:  "APTO",
	entity.RealEstateLand:       "TERR",
	entity.RealEstateCommercial: "COM",
	entity.RealEstateRural:      "RUR",
}

const defaultCodePrefix = "IMO"

// CodePrefix maps a listing type to its reference-code prefix. Unknown
// types fall back to the generic prefix.
func CodePrefix(listingType string) string {
	if prefix, ok := codePrefixes[entity.RealEstateType(listingType)]; ok {
		return prefix
	}
	return defaultCodePrefix
}

// NextSequentialCode increments the numeric suffix of the highest existing
// code for a prefix, zero-padded to six digits. An empty last code starts
// the sequence at 1.
func NextSequentialCode(prefix string, last string) string {
	sequence := 1
	if last != "" {
		if idx := strings.LastIndex(last, "-"); idx >= 0 {
			if parsed, err := strconv.Atoi(last[idx+1:]); err == nil {
				sequence = parsed + 1
			}
		}
	}
	return fmt.Sprintf("%s-%06d", prefix, sequence)
}

type RealEstateService struct {
	listings repository.RealEstateRepository
}

func NewRealEstateService(listings repository.RealEstateRepository) *RealEstateService {
	return &RealEstateService{listings: listings}
}

func (s *RealEstateService) List(ctx context.Context) ([]entity.RealEstate, error) {
	return s.listings.List(ctx)
}

// ListPublic serves the site search: only available listings, filtered and
// paginated.
func (s *RealEstateService) ListPublic(ctx context.Context, filter repository.ListingFilter) (*dto.PaginatedListings, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 12
	}

	listings, total, err := s.listings.ListAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.PaginatedListings{
		Data:       listings,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *RealEstateService) Get(ctx context.Context, id uuid.UUID) (*entity.RealEstate, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	return listing, nil
}

// NextCode previews the next reference code for a listing type without
// reserving it.
func (s *RealEstateService) NextCode(ctx context.Context, listingType string) (string, error) {
	if strings.TrimSpace(listingType) == "" {
		return "", ErrInvalidInput
	}
	prefix := CodePrefix(listingType)
	last, err := s.listings.LastCodeForPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return NextSequentialCode(prefix, last), nil
}

func (s *RealEstateService) Create(ctx context.Context, input dto.RealEstateCreateRequest) (*entity.RealEstate, error) {
	listing := input.ToEntity()
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}

	prefix := CodePrefix(input.Type)
	err := s.listings.Create(ctx, listing, prefix, func(last string) string {
		return NextSequentialCode(prefix, last)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *RealEstateService) Update(ctx context.Context, id uuid.UUID, input dto.RealEstateUpdateRequest) (*entity.RealEstate, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}

	input.Apply(listing)
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *RealEstateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.listings.Delete(ctx, id)
}
