package entity

import (
	"time"

	"github.com/google/uuid"
)

type CustomerType string

const (
	CustomerTypeFisica   CustomerType = "FISICA"
	CustomerTypeJuridica CustomerType = "JURIDICA"
)

// Customer is a lead, buyer or property owner. Documents are stored raw,
// without mask formatting.
type Customer struct {
	ID   uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string       `gorm:"type:text;not null" json:"name"`
	Type CustomerType `gorm:"type:text;default:'FISICA';not null" json:"type"`

	Document         *string `gorm:"type:text" json:"document"`
	RG               *string `gorm:"column:rg;type:text" json:"rg"`
	IssuingOrgan     *string `gorm:"type:text" json:"issuing_organ"`
	StateInscription *string `gorm:"type:text" json:"state_inscription"`

	Phone    *string `gorm:"type:text" json:"phone"`
	AltPhone *string `gorm:"type:text" json:"alt_phone"`
	Email    *string `gorm:"type:text" json:"email"`

	Street       *string `gorm:"type:text" json:"street"`
	Number       *string `gorm:"type:text" json:"number"`
	Complement   *string `gorm:"type:text" json:"complement"`
	Neighborhood *string `gorm:"type:text" json:"neighborhood"`
	City         *string `gorm:"type:text" json:"city"`
	State        *string `gorm:"type:text" json:"state"`
	Zip          *string `gorm:"type:text" json:"zip"`

	Interest     *string `gorm:"type:text" json:"interest"`
	PropertyType *string `gorm:"type:text" json:"property_type"`
	ValueRange   *string `gorm:"type:text" json:"value_range"`
	Observations *string `gorm:"type:text" json:"observations"`

	Status UserStatus `gorm:"type:text;default:'active';not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
