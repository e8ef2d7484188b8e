package database

import (
	"errors"

	"github.com/hritik2004-cse/portfolio-backend/models"
	"gorm.io/gorm"
)

type QuickLinkRepo struct {
	db *gorm.DB
}

func NewQuickLinkRepo(db *gorm.DB) *QuickLinkRepo {
	return &QuickLinkRepo{db}
}

// FindActive returns the links shown publicly, lowest priority first
func (r *QuickLinkRepo) FindActive() ([]*models.QuickLink, error) {
	var links []*models.QuickLink
	err := r.db.Where("is_active = ?", true).Order("priority ASC").Find(&links).Error
	return links, err
}

// FindAll returns every link regardless of isActive, for the admin view
func (r *QuickLinkRepo) FindAll() ([]*models.QuickLink, error) {
	var links []*models.QuickLink
	err := r.db.Order("priority ASC").Find(&links).Error
	return links, err
}

// FindByID looks up a link by its slug id, or nil when absent
func (r *QuickLinkRepo) FindByID(id string) (*models.QuickLink, error) {
	var link models.QuickLink
	err := r.db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *QuickLinkRepo) Add(link *models.QuickLink) error {
	return r.db.Create(link).Error
}

func (r *QuickLinkRepo) Update(link *models.QuickLink) error {
	return r.db.Save(link).Error
}

func (r *QuickLinkRepo) Delete(id string) error {
	return r.db.Delete(&models.QuickLink{}, "id = ?", id).Error
}
