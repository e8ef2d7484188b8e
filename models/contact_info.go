package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactInfo holds the footer contact card. By convention a single record is
// active at a time; the public endpoint returns the active one.
type ContactInfo struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Location  string    `json:"location" db:"location" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     string    `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Bio       string    `json:"bio" db:"bio" gorm:"type:text;not null"`
	Website   string    `json:"website,omitempty" db:"website" gorm:"type:text"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (c *ContactInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c ContactInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return missingField("name")
	}
	if strings.TrimSpace(c.Title) == "" {
		return missingField("title")
	}
	if strings.TrimSpace(c.Location) == "" {
		return missingField("location")
	}
	if !emailRegexp.MatchString(c.Email) {
		return invalidField("email", "must be a valid email address")
	}
	if c.Phone != "" && !phoneRegexp.MatchString(c.Phone) {
		return invalidField("phone", "must be a valid phone number")
	}
	if strings.TrimSpace(c.Bio) == "" {
		return missingField("bio")
	}
	if len(c.Bio) > 500 {
		return invalidField("bio", "must be at most 500 characters")
	}
	if c.Website != "" && !websiteRegexp.MatchString(c.Website) {
		return invalidField("website", "must be a valid http(s) URL")
	}
	return nil
}
