package dto

import (
	"imobia/internal/entity"

	"github.com/google/uuid"
)

type RealEstateCreateRequest struct {
	Code  string `json:"code" validate:"omitempty"`
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=HOUSE APARTMENT LAND COMMERCIAL RURAL"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`

	Finality  string `json:"finality" validate:"required,oneof=SALE RENT BOTH"`
	Situation string `json:"situation" validate:"omitempty,oneof=AVAILABLE OCCUPIED UNAVAILABLE"`

	BuiltArea   *float64 `json:"built_area"`
	TotalArea   *float64 `json:"total_area"`
	Bedrooms    *int     `json:"bedrooms"`
	Suites      *int     `json:"suites"`
	Bathrooms   *int     `json:"bathrooms"`
	GarageSpots *int     `json:"garage_spots"`
	IsFurnished *bool    `json:"is_furnished"`

	RentalValue      *float64 `json:"rental_value"`
	SaleValue        *float64 `json:"sale_value"`
	CondominiumValue *float64 `json:"condominium_value"`
	IptuValue        *float64 `json:"iptu_value"`

	OwnerID        *uuid.UUID `json:"owner_id"`
	RegistryID     *string    `json:"registry_id"`
	RegistrationID *string    `json:"registration_id"`
	LegalNotes     *string    `json:"legal_notes"`

	Photos     *string `json:"photos"`
	Videos     *string `json:"videos"`
	Blueprints *string `json:"blueprints"`

	IsAvailable *bool `json:"is_available"`
}

// ToEntity fills server-side defaults for fields the caller omitted.
func (r RealEstateCreateRequest) ToEntity() *entity.RealEstate {
	listing := &entity.RealEstate{
		Code:  r.Code,
		Title: r.Title,
		Type:  entity.RealEstateType(r.Type),

		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,

		Finality:  entity.Finality(r.Finality),
		Situation: entity.SituationAvailable,

		BuiltArea:   r.BuiltArea,
		TotalArea:   r.TotalArea,
		Bedrooms:    r.Bedrooms,
		Suites:      r.Suites,
		Bathrooms:   r.Bathrooms,
		GarageSpots: r.GarageSpots,

		RentalValue:      r.RentalValue,
		SaleValue:        r.SaleValue,
		CondominiumValue: r.CondominiumValue,
		IptuValue:        r.IptuValue,

		OwnerID:        r.OwnerID,
		RegistryID:     r.RegistryID,
		RegistrationID: r.RegistrationID,
		LegalNotes:     r.LegalNotes,

		Photos:     r.Photos,
		Videos:     r.Videos,
		Blueprints: r.Blueprints,

		IsAvailable: true,
	}
	if r.Situation != "" {
		listing.Situation = entity.Situation(r.Situation)
	}
	if r.IsFurnished != nil {
		listing.IsFurnished = *r.IsFurnished
	}
	if r.IsAvailable != nil {
		listing.IsAvailable = *r.IsAvailable
	}
	return listing
}

// RealEstateUpdateRequest is a partial patch: nil fields are preserved.
type RealEstateUpdateRequest struct {
	Title *string `json:"title"`
	Type  *string `json:"type" validate:"omitempty,oneof=HOUSE APARTMENT LAND COMMERCIAL RURAL"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`

	Finality  *string `json:"finality" validate:"omitempty,oneof=SALE RENT BOTH"`
	Situation *string `json:"situation" validate:"omitempty,oneof=AVAILABLE OCCUPIED UNAVAILABLE"`

	BuiltArea   *float64 `json:"built_area"`
	TotalArea   *float64 `json:"total_area"`
	Bedrooms    *int     `json:"bedrooms"`
	Suites      *int     `json:"suites"`
	Bathrooms   *int     `json:"bathrooms"`
	GarageSpots *int     `json:"garage_spots"`
	IsFurnished *bool    `json:"is_furnished"`

	RentalValue      *float64 `json:"rental_value"`
	SaleValue        *float64 `json:"sale_value"`
	CondominiumValue *float64 `json:"condominium_value"`
	IptuValue        *float64 `json:"iptu_value"`

	OwnerID        *uuid.UUID `json:"owner_id"`
	RegistryID     *string    `json:"registry_id"`
	RegistrationID *string    `json:"registration_id"`
	LegalNotes     *string    `json:"legal_notes"`

	Photos     *string `json:"photos"`
	Videos     *string `json:"videos"`
	Blueprints *string `json:"blueprints"`

	IsAvailable *bool `json:"is_available"`
}

func (r RealEstateUpdateRequest) Apply(listing *entity.RealEstate) {
	if r.Title != nil {
		listing.Title = *r.Title
	}
	if r.Type != nil {
		listing.Type = entity.RealEstateType(*r.Type)
	}
	if r.Street != nil {
		listing.Street = r.Street
	}
	if r.Number != nil {
		listing.Number = r.Number
	}
	if r.Complement != nil {
		listing.Complement = r.Complement
	}
	if r.Neighborhood != nil {
		listing.Neighborhood = r.Neighborhood
	}
	if r.City != nil {
		listing.City = r.City
	}
	if r.State != nil {
		listing.State = r.State
	}
	if r.Zip != nil {
		listing.Zip = r.Zip
	}
	if r.Finality != nil {
		listing.Finality = entity.Finality(*r.Finality)
	}
	if r.Situation != nil {
		listing.Situation = entity.Situation(*r.Situation)
	}
	if r.BuiltArea != nil {
		listing.BuiltArea = r.BuiltArea
	}
	if r.TotalArea != nil {
		listing.TotalArea = r.TotalArea
	}
	if r.Bedrooms != nil {
		listing.Bedrooms = r.Bedrooms
	}
	if r.Suites != nil {
		listing.Suites = r.Suites
	}
	if r.Bathrooms != nil {
		listing.Bathrooms = r.Bathrooms
	}
	if r.GarageSpots != nil {
		listing.GarageSpots = r.GarageSpots
	}
	if r.IsFurnished != nil {
		listing.IsFurnished = *r.IsFurnished
	}
	if r.RentalValue != nil {
		listing.RentalValue = r.RentalValue
	}
	if r.SaleValue != nil {
		listing.SaleValue = r.SaleValue
	}
	if r.CondominiumValue != nil {
		listing.CondominiumValue = r.CondominiumValue
	}
	if r.IptuValue != nil {
		listing.IptuValue = r.IptuValue
	}
	if r.OwnerID != nil {
		listing.OwnerID = r.OwnerID
	}
	if r.RegistryID != nil {
		listing.RegistryID = r.RegistryID
	}
	if r.RegistrationID != nil {
		listing.RegistrationID = r.RegistrationID
	}
	if r.LegalNotes != nil {
		listing.LegalNotes = r.LegalNotes
	}
	if r.Photos != nil {
		listing.Photos = r.Photos
	}
	if r.Videos != nil {
		listing.Videos = r.Videos
	}
	if r.Blueprints != nil {
		listing.Blueprints = r.Blueprints
	}
	if r.IsAvailable != nil {
		listing.IsAvailable = *r.IsAvailable
	}
}

// PaginatedListings is the public search envelope.
type PaginatedListings struct {
	Data       []entity.RealEstate `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}
