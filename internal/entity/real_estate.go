package entity

import (
	"time"

	"github.com/google/uuid"
)

type RealEstateType string

const (
	RealEstateHouse      RealEstateType = "HOUSE"
	RealEstateApartment  RealEstateType = "APARTMENT"
	RealEstateLand       RealEstateType = "LAND"
	RealEstateCommercial RealEstateType = "COMMERCIAL"
	RealEstateRural      RealEstateType = "RURAL"
)

type Finality string

const (
	FinalitySale Finality = "SALE"
	FinalityRent Finality = "RENT"
	FinalityBoth Finality = "BOTH"
)

type Situation string

const (
	SituationAvailable   Situation = "AVAILABLE"
	SituationOccupied    Situation = "OCCUPIED"
	SituationUnavailable Situation = "UNAVAILABLE"
)

// RealEstate is a property listing. Photos, videos and blueprints are
// JSON-encoded strings persisted verbatim; the API never reparses them.
type RealEstate struct {
	ID    uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code  string         `gorm:"type:text;uniqueIndex;not null" json:"code"`
	Title string         `gorm:"type:text;not null" json:"title"`
	Type  RealEstateType `gorm:"type:text;not null" json:"type"`

	Street       *string `gorm:"type:text" json:"street"`
	Number       *string `gorm:"type:text" json:"number"`
	Complement   *string `gorm:"type:text" json:"complement"`
	Neighborhood *string `gorm:"type:text" json:"neighborhood"`
	City         *string `gorm:"type:text" json:"city"`
	State        *string `gorm:"type:text" json:"state"`
	Zip          *string `gorm:"type:text" json:"zip"`

	Finality  Finality  `gorm:"type:text;not null" json:"finality"`
	Situation Situation `gorm:"type:text;default:'AVAILABLE';not null" json:"situation"`

	BuiltArea   *float64 `gorm:"type:numeric" json:"built_area"`
	TotalArea   *float64 `gorm:"type:numeric" json:"total_area"`
	Bedrooms    *int     `json:"bedrooms"`
	Suites      *int     `json:"suites"`
	Bathrooms   *int     `json:"bathrooms"`
	GarageSpots *int     `json:"garage_spots"`
	IsFurnished bool     `gorm:"default:false" json:"is_furnished"`

	RentalValue      *float64 `gorm:"type:numeric" json:"rental_value"`
	SaleValue        *float64 `gorm:"type:numeric" json:"sale_value"`
	CondominiumValue *float64 `gorm:"type:numeric" json:"condominium_value"`
	IptuValue        *float64 `gorm:"type:numeric" json:"iptu_value"`

	OwnerID        *uuid.UUID `gorm:"type:uuid" json:"owner_id"`
	RegistryID     *string    `gorm:"type:text" json:"registry_id"`
	RegistrationID *string    `gorm:"type:text" json:"registration_id"`
	LegalNotes     *string    `gorm:"type:text" json:"legal_notes"`

	Photos     *string `gorm:"type:text" json:"photos"`
	Videos     *string `gorm:"type:text" json:"videos"`
	Blueprints *string `gorm:"type:text" json:"blueprints"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	// Populated by a left join to customers on reads, never written.
	OwnerName *string `gorm:"->;-:migration" json:"owner_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RealEstate) TableName() string {
	return "real_estate"
}
