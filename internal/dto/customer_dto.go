package dto

import "imobia/internal/entity"

type CustomerCreateRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"omitempty,oneof=FISICA JURIDICA"`

	Document         *string `json:"document"`
	RG               *string `json:"rg"`
	IssuingOrgan     *string `json:"issuing_organ"`
	StateInscription *string `json:"state_inscription"`

	Phone    *string `json:"phone"`
	AltPhone *string `json:"alt_phone"`
	Email    *string `json:"email" validate:"omitempty,email"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`

	Interest     *string `json:"interest"`
	PropertyType *string `json:"property_type"`
	ValueRange   *string `json:"value_range"`
	Observations *string `json:"observations"`

	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CustomerUpdateRequest is a partial patch: nil fields are preserved.
type CustomerUpdateRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type" validate:"omitempty,oneof=FISICA JURIDICA"`

	Document         *string `json:"document"`
	RG               *string `json:"rg"`
	IssuingOrgan     *string `json:"issuing_organ"`
	StateInscription *string `json:"state_inscription"`

	Phone    *string `json:"phone"`
	AltPhone *string `json:"alt_phone"`
	Email    *string `json:"email" validate:"omitempty,email"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`

	Interest     *string `json:"interest"`
	PropertyType *string `json:"property_type"`
	ValueRange   *string `json:"value_range"`
	Observations *string `json:"observations"`

	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Apply copies the non-nil fields onto the loaded row.
func (r CustomerUpdateRequest) Apply(customer *entity.Customer) {
	if r.Name != nil {
		customer.Name = *r.Name
	}
	if r.Type != nil {
		customer.Type = entity.CustomerType(*r.Type)
	}
	if r.Document != nil {
		customer.Document = r.Document
	}
	if r.RG != nil {
		customer.RG = r.RG
	}
	if r.IssuingOrgan != nil {
		customer.IssuingOrgan = r.IssuingOrgan
	}
	if r.StateInscription != nil {
		customer.StateInscription = r.StateInscription
	}
	if r.Phone != nil {
		customer.Phone = r.Phone
	}
	if r.AltPhone != nil {
		customer.AltPhone = r.AltPhone
	}
	if r.Email != nil {
		customer.Email = r.Email
	}
	if r.Street != nil {
		customer.Street = r.Street
	}
	if r.Number != nil {
		customer.Number = r.Number
	}
	if r.Complement != nil {
		customer.Complement = r.Complement
	}
	if r.Neighborhood != nil {
		customer.Neighborhood = r.Neighborhood
	}
	if r.City != nil {
		customer.City = r.City
	}
	if r.State != nil {
		customer.State = r.State
	}
	if r.Zip != nil {
		customer.Zip = r.Zip
	}
	if r.Interest != nil {
		customer.Interest = r.Interest
	}
	if r.PropertyType != nil {
		customer.PropertyType = r.PropertyType
	}
	if r.ValueRange != nil {
		customer.ValueRange = r.ValueRange
	}
	if r.Observations != nil {
		customer.Observations = r.Observations
	}
	if r.Status != nil {
		customer.Status = entity.UserStatus(*r.Status)
	}
}
