package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	SignInSuccess AuditAction = "sign_in_success"
	SignInFailed  AuditAction = "sign_in_failed"
	SignInBlocked AuditAction = "sign_in_blocked"
	SignOut       AuditAction = "sign_out"
	UserDeleted   AuditAction = "user_deleted"
)

type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID *string `gorm:"type:text;index" json:"user_id"`
	User   *User   `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	IPAddress *string     `gorm:"type:varchar(45)" json:"ip_address"`
	Action    AuditAction `gorm:"type:text;not null" json:"action"`

	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
