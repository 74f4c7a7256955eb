package dto

import "imobia/internal/entity"

type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse matches the auth client's get-session payload.
type SessionResponse struct {
	Session *entity.Session `json:"session"`
	User    *entity.User    `json:"user"`
}
