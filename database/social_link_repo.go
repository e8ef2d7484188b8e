package database

import (
	"errors"

	"github.com/hritik2004-cse/portfolio-backend/models"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	db *gorm.DB
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{db}
}

// FindActive returns the links shown publicly, lowest priority first
func (r *SocialLinkRepo) FindActive() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	err := r.db.Where("is_active = ?", true).Order("priority ASC").Find(&links).Error
	return links, err
}

// FindAll returns every link regardless of isActive, for the admin view
func (r *SocialLinkRepo) FindAll() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	err := r.db.Order("priority ASC").Find(&links).Error
	return links, err
}

// FindByID looks up a link by its slug id, or nil when absent
func (r *SocialLinkRepo) FindByID(id string) (*models.SocialLink, error) {
	var link models.SocialLink
	err := r.db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Count reports the number of stored links; the seed routine uses it as its
// idempotency guard.
func (r *SocialLinkRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SocialLink{}).Count(&count).Error
	return count, err
}

func (r *SocialLinkRepo) Add(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

func (r *SocialLinkRepo) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

func (r *SocialLinkRepo) Delete(id string) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
