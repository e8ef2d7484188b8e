package database

import (
	"errors"

	"github.com/hritik2004-cse/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db}
}

// FindAll returns all projects, newest first
func (r *ContentRepo) FindAll() ([]*models.Content, error) {
	var content []*models.Content
	err := r.db.Order("created_at DESC").Find(&content).Error
	return content, err
}

// FindByID returns a project by its numeric id, or nil when absent
func (r *ContentRepo) FindByID(id int64) (*models.Content, error) {
	var content models.Content
	err := r.db.First(&content, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// NextID returns one greater than the highest surviving id, or 1 when the
// table is empty. An id below the current maximum is never reused, but
// deleting the newest project lets its id be handed out again.
func (r *ContentRepo) NextID() (int64, error) {
	var maxID int64
	err := r.db.Model(&models.Content{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

// Add inserts a new project into the database
func (r *ContentRepo) Add(content *models.Content) error {
	return r.db.Create(content).Error
}

// Update updates an existing project in the database
func (r *ContentRepo) Update(content *models.Content) error {
	return r.db.Save(content).Error
}

// Delete removes a project from the database by id
func (r *ContentRepo) Delete(id int64) error {
	return r.db.Delete(&models.Content{}, "id = ?", id).Error
}
