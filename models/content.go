package models

import (
	"strings"
	"time"
)

// MaxDescriptionLength caps project descriptions, matching the admin form.
const MaxDescriptionLength = 500

// Content represents a project entry displayed on the portfolio
type Content struct {
	ID                 int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false;not null"`
	ProjectImg         string    `json:"projectImg" db:"project_img" gorm:"type:text;not null"`
	ProjectName        string    `json:"projectName" db:"project_name" gorm:"type:text;not null"`
	Description        string    `json:"description" db:"description" gorm:"type:text;not null"`
	Tags               []string  `json:"tags" db:"tags" gorm:"serializer:json;type:text"`
	LiveLink           string    `json:"liveLink" db:"live_link" gorm:"type:text;not null"`
	GithubLink         string    `json:"githubLink" db:"github_link" gorm:"type:text;not null"`
	CloudinaryPublicID string    `json:"cloudinaryPublicId" db:"cloudinary_public_id" gorm:"type:text;not null"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate checks the fields a client is allowed to set. The image fields are
// validated separately because they are filled in by the media store, not the
// request body.
func (c Content) Validate() error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return missingField("projectName")
	}
	if strings.TrimSpace(c.Description) == "" {
		return missingField("description")
	}
	if len(c.Description) > MaxDescriptionLength {
		return invalidField("description", "must be at most 500 characters")
	}
	if strings.TrimSpace(c.LiveLink) == "" {
		return missingField("liveLink")
	}
	if strings.TrimSpace(c.GithubLink) == "" {
		return missingField("githubLink")
	}
	return nil
}

// NormalizeTags accepts the tag input in either of the shapes the admin form
// submits: several form values, or a single comma-separated string. Entries
// are trimmed and empty segments dropped; order and duplicates are preserved.
func NormalizeTags(raw []string) []string {
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
