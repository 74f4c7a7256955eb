package repository

import (
	"context"
	"errors"
	"strings"

	"imobia/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingFilter carries the public search parameters. Zero values mean
// "not filtered".
type ListingFilter struct {
	Finality string
	Type     string
	Bedrooms int
	MinPrice float64
	MaxPrice float64
	City     string
	Search   string
	Page     int
	Limit    int
}

type RealEstateRepository interface {
	// Create inserts the listing; when the code is blank it is assigned
	// inside the transaction from the highest code sharing prefix, with a
	// bounded retry on the unique index.
	Create(ctx context.Context, listing *entity.RealEstate, prefix string, codeFor func(last string) string) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RealEstate, error)
	List(ctx context.Context) ([]entity.RealEstate, error)
	ListAvailable(ctx context.Context, filter ListingFilter) ([]entity.RealEstate, int64, error)
	LastCodeForPrefix(ctx context.Context, prefix string) (string, error)
	Update(ctx context.Context, listing *entity.RealEstate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type realEstateRepository struct {
	db *gorm.DB
}

func NewRealEstateRepository(db *gorm.DB) RealEstateRepository {
	return &realEstateRepository{db: db}
}

const ownerJoin = "LEFT JOIN customers ON customers.id = real_estate.owner_id"

func (r *realEstateRepository) Create(ctx context.Context, listing *entity.RealEstate, prefix string, codeFor func(last string) string) error {
	if listing.Code != "" {
		return r.db.WithContext(ctx).Create(listing).Error
	}

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			last, txErr := lastCodeForPrefix(tx, prefix)
			if txErr != nil {
				return txErr
			}
			listing.Code = codeFor(last)
			return tx.Create(listing).Error
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		listing.Code = ""
	}
	return err
}

func (r *realEstateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RealEstate, error) {
	var listing entity.RealEstate
	err := r.db.WithContext(ctx).
		Select("real_estate.*, customers.name AS owner_name").
		Joins(ownerJoin).
		Where("real_estate.id = ?", id).
		First(&listing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &listing, err
}

func (r *realEstateRepository) List(ctx context.Context) ([]entity.RealEstate, error) {
	var listings []entity.RealEstate
	err := r.db.WithContext(ctx).
		Select("real_estate.*, customers.name AS owner_name").
		Joins(ownerJoin).
		Order("real_estate.created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListAvailable only ever returns rows with is_available = true; the public
// site cannot opt out of that gate.
func (r *realEstateRepository) ListAvailable(ctx context.Context, filter ListingFilter) ([]entity.RealEstate, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.RealEstate{}).
		Where("is_available = TRUE")

	if filter.Finality != "" {
		query = query.Where("finality = ?", filter.Finality)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Bedrooms > 0 {
		query = query.Where("bedrooms >= ?", filter.Bedrooms)
	}
	if filter.MinPrice > 0 {
		query = query.Where("sale_value >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("sale_value <= ?", filter.MaxPrice)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 12
	}

	var listings []entity.RealEstate
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *realEstateRepository) LastCodeForPrefix(ctx context.Context, prefix string) (string, error) {
	return lastCodeForPrefix(r.db.WithContext(ctx), prefix)
}

func lastCodeForPrefix(db *gorm.DB, prefix string) (string, error) {
	var listing entity.RealEstate
	err := db.
		Select("code").
		Where("code LIKE ?", strings.ToUpper(prefix)+"-%").
		Order("code DESC").
		Limit(1).
		First(&listing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return listing.Code, err
}

func (r *realEstateRepository) Update(ctx context.Context, listing *entity.RealEstate) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *realEstateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.RealEstate{}).
		Error
}
