package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"gorm.io/gorm"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindActive returns the technologies shown publicly, lowest priority first
func (r *TechnologyRepo) FindActive() ([]*models.Technology, error) {
	var techs []*models.Technology
	err := r.db.Where("is_active = ?", true).Order("priority ASC").Find(&techs).Error
	return techs, err
}

// FindAll returns every technology regardless of isActive, for the admin view
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var techs []*models.Technology
	err := r.db.Order("priority ASC").Find(&techs).Error
	return techs, err
}

// FindByID looks up a technology by its database id, or nil when absent
func (r *TechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	var tech models.Technology
	err := r.db.First(&tech, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *TechnologyRepo) Add(tech *models.Technology) error {
	return r.db.Create(tech).Error
}

func (r *TechnologyRepo) Update(tech *models.Technology) error {
	return r.db.Save(tech).Error
}

func (r *TechnologyRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Technology{}, "id = ?", id).Error
}
