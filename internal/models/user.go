package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9+]+$`)
)

// User is an account. Email is the login identity; the username is a
// display/profile attribute and has no part in authentication.
type User struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber  string         `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	Gender       Gender         `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Role         Role           `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Plants       []Plant       `gorm:"foreignKey:UserID" json:"-"`
	Products     []Product     `gorm:"foreignKey:UserID" json:"-"`
	Reminders    []Reminder    `gorm:"foreignKey:UserID" json:"-"`
	DeviceTokens []DeviceToken `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleUser
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty struct; skip struct validation there.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if len(u.Username) > 50 {
		return errors.New("username cannot exceed 50 characters")
	}

	if u.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	if u.PhoneNumber != "" && !phoneRegex.MatchString(u.PhoneNumber) {
		return errors.New("invalid phone number")
	}

	if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsFarmer() bool {
	return u.Role == RoleFarmer
}

func (u *User) TableName() string {
	return "users"
}
