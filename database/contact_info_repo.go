package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactInfoRepo struct {
	db *gorm.DB
}

func NewContactInfoRepo(db *gorm.DB) *ContactInfoRepo {
	return &ContactInfoRepo{db}
}

// FindActive returns the contact card currently shown in the footer, or nil
// when none is active.
func (r *ContactInfoRepo) FindActive() (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.First(&info, "is_active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// FindAll returns every stored contact card, for the admin view
func (r *ContactInfoRepo) FindAll() ([]*models.ContactInfo, error) {
	var infos []*models.ContactInfo
	err := r.db.Order("created_at ASC").Find(&infos).Error
	return infos, err
}

// FindByID looks up a contact card by its database id, or nil when absent
func (r *ContactInfoRepo) FindByID(id uuid.UUID) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.First(&info, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *ContactInfoRepo) Add(info *models.ContactInfo) error {
	return r.db.Create(info).Error
}

func (r *ContactInfoRepo) Update(info *models.ContactInfo) error {
	return r.db.Save(info).Error
}
