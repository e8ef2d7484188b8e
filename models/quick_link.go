package models

import (
	"strings"
	"time"
)

// QuickLink is an in-page navigation shortcut shown in the footer. Like
// SocialLink, its ID is a caller-chosen slug.
type QuickLink struct {
	ID         string    `json:"id" db:"id" gorm:"primaryKey;type:text;not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	URL        string    `json:"url" db:"url" gorm:"type:text;not null"`
	Priority   int       `json:"priority" db:"priority" gorm:"not null"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	IsExternal bool      `json:"isExternal" db:"is_external" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

func (q QuickLink) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return missingField("id")
	}
	if strings.TrimSpace(q.Name) == "" {
		return missingField("name")
	}
	if strings.TrimSpace(q.URL) == "" {
		return missingField("url")
	}
	if !validPriority(q.Priority) {
		return invalidField("priority", "must be between 1 and 100")
	}
	return nil
}
