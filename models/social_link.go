package models

import (
	"strings"
	"time"
)

// IconNames is the fixed set of icons the front end can render. The /icons
// endpoint exposes it so the admin panel can offer a picker.
var IconNames = []string{
	"FaGithub", "FaLinkedin", "FaTwitter", "FaInstagram",
	"FaEnvelope", "FaPhone", "FaYoutube", "SiLeetcode", "SiCodechef",
	"SiDiscord", "SiTelegram", "FaMedium",
	"SiDevdotto", "SiHashnode", "FaStackOverflow",
}

// SocialLinkCategories enumerates where a link appears in the footer layout.
var SocialLinkCategories = []string{
	"development", "professional", "social", "coding",
	"contact", "community", "messaging", "content",
}

// SocialLink represents a social profile shown in the page footer. The ID is
// a caller-chosen slug ("github", "linkedin"), not a database-generated key.
type SocialLink struct {
	ID          string    `json:"id" db:"id" gorm:"primaryKey;type:text;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	URL         string    `json:"url" db:"url" gorm:"type:text;not null"`
	IconName    string    `json:"iconName" db:"icon_name" gorm:"type:text;not null"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Priority    int       `json:"priority" db:"priority" gorm:"not null"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	Description string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (s SocialLink) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return missingField("id")
	}
	if strings.TrimSpace(s.Name) == "" {
		return missingField("name")
	}
	if !linkURLRegexp.MatchString(s.URL) {
		return invalidField("url", "must start with http://, https://, mailto: or tel:")
	}
	if !containsString(IconNames, s.IconName) {
		return invalidField("iconName", "unknown icon name")
	}
	if !hexColorRegexp.MatchString(s.Color) {
		return invalidField("color", "must be a 6-digit hex color")
	}
	if !containsString(SocialLinkCategories, s.Category) {
		return invalidField("category", "unknown category")
	}
	if !validPriority(s.Priority) {
		return invalidField("priority", "must be between 1 and 100")
	}
	if len(s.Description) > 200 {
		return invalidField("description", "must be at most 200 characters")
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
