package entity

import "time"

const ProviderCredential = "credential"

// Account holds a user's credential rows. Password rotation rewrites the
// row where provider_id = 'credential'.
type Account struct {
	ID     string `gorm:"type:text;primaryKey" json:"id"`
	UserID string `gorm:"type:text;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ProviderID string  `gorm:"type:text;not null" json:"providerId"`
	AccountID  string  `gorm:"type:text;not null" json:"accountId"`
	Password   *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
