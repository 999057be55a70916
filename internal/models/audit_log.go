package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	AuditActionLogin        = "login"
	AuditActionFailedLogin  = "failed_login"
	AuditActionRegister     = "register"
	AuditActionTokenRefresh = "token_refresh"
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionDelete       = "delete"
	AuditActionOrderPlaced  = "order_placed"
	AuditActionOrderStatus  = "order_status_changed"
	AuditActionUserDeleted  = "user_deleted"
)

// JSONBMap stores arbitrary structured metadata as JSON text.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONBMap: %T", value)
	}

	return json.Unmarshal(data, m)
}

// AuditLog records a security- or commerce-relevant event. UserID is nil for
// events with no resolved account (e.g. failed logins).
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int64    `gorm:"index" json:"user_id,omitempty"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string    `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string    `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}
