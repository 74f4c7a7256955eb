package dto

type UserUpdateRequest struct {
	Name   *string `json:"name" validate:"omitempty"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`

	// Present only on the admin password-rotation side channel.
	Password *string `json:"password" validate:"omitempty,min=8"`
}
