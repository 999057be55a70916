package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DeviceType is the platform a push token belongs to.
type DeviceType string

const (
	DeviceAndroid DeviceType = "android"
	DeviceIOS     DeviceType = "ios"
	DeviceWeb     DeviceType = "web"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceAndroid, DeviceIOS, DeviceWeb:
		return true
	}
	return false
}

// DeviceToken is a push-notification registration token for one of a user's
// devices. A user may have several; the token string itself is unique.
type DeviceToken struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64      `gorm:"not null;index" json:"user_id"`
	Token       string     `gorm:"type:varchar(512);uniqueIndex;not null" json:"token"`
	DeviceType  DeviceType `gorm:"type:varchar(10);not null" json:"device_type"`
	DeviceModel string     `gorm:"type:varchar(100)" json:"device_model,omitempty"`
	AppVersion  string     `gorm:"type:varchar(20)" json:"app_version,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (dt *DeviceToken) BeforeCreate(tx *gorm.DB) error {
	return dt.Validate()
}

func (dt *DeviceToken) Validate() error {
	if dt.UserID == 0 {
		return errors.New("device token must belong to a user")
	}

	if dt.Token == "" {
		return errors.New("token is required")
	}

	if !dt.DeviceType.Valid() {
		return fmt.Errorf("invalid device type: %s", dt.DeviceType)
	}

	return nil
}

func (dt *DeviceToken) TableName() string {
	return "device_tokens"
}
