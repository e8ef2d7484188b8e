package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyCategories enumerates the groups the skills section renders.
var TechnologyCategories = []string{
	"frontend", "backend", "database", "tools", "deployment", "mobile", "other",
}

// Technology is an entry in the footer's technology strip.
type Technology struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Color     string    `json:"color" db:"color" gorm:"type:text;not null"`
	Priority  int       `json:"priority" db:"priority" gorm:"not null"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	Category  string    `json:"category" db:"category" gorm:"type:text;default:other"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (t *Technology) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Category == "" {
		t.Category = "other"
	}
	return nil
}

func (t Technology) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return missingField("name")
	}
	if !hexColorRegexp.MatchString(t.Color) {
		return invalidField("color", "must be a 6-digit hex color")
	}
	if !validPriority(t.Priority) {
		return invalidField("priority", "must be between 1 and 100")
	}
	if t.Category != "" && !containsString(TechnologyCategories, t.Category) {
		return invalidField("category", "unknown category")
	}
	return nil
}
