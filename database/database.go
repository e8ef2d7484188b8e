package database

import (
	"gorm.io/gorm"
)

type Database struct {
	contentRepo     *ContentRepo
	socialLinkRepo  *SocialLinkRepo
	contactInfoRepo *ContactInfoRepo
	quickLinkRepo   *QuickLinkRepo
	technologyRepo  *TechnologyRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		contentRepo:     NewContentRepo(db),
		socialLinkRepo:  NewSocialLinkRepo(db),
		contactInfoRepo: NewContactInfoRepo(db),
		quickLinkRepo:   NewQuickLinkRepo(db),
		technologyRepo:  NewTechnologyRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ContentRepo() *ContentRepo {
	return d.contentRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) ContactInfoRepo() *ContactInfoRepo {
	return d.contactInfoRepo
}

func (d Database) QuickLinkRepo() *QuickLinkRepo {
	return d.quickLinkRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}
