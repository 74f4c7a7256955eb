package entity

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User mirrors the auth schema: the id is an opaque string and the JSON
// shape keeps the camelCase keys the admin UI already consumes.
type User struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	Name          string     `gorm:"type:text;not null" json:"name"`
	Email         string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Image         *string    `gorm:"type:text" json:"image"`
	EmailVerified bool       `gorm:"default:false" json:"emailVerified"`
	Status        UserStatus `gorm:"type:text;default:'active';not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sessions []Session `json:"-"`
	Accounts []Account `json:"-"`
}
