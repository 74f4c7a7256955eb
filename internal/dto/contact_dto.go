package dto

import "github.com/google/uuid"

type ContactRequest struct {
	Name       string     `json:"name" validate:"required"`
	Phone      string     `json:"phone" validate:"required"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Message    string     `json:"message" validate:"required"`
	PropertyID *uuid.UUID `json:"property_id"`
}
