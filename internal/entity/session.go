package entity

import "time"

type Session struct {
	ID     string `gorm:"type:text;primaryKey" json:"id"`
	UserID string `gorm:"type:text;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	TokenHash string `gorm:"type:text;not null;index" json:"-"`

	IPAddress *string `gorm:"type:varchar(45)" json:"ipAddress,omitempty"`
	UserAgent *string `gorm:"type:text" json:"userAgent,omitempty"`

	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
