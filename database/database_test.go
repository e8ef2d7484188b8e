package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hritik2004-cse/portfolio-backend/models"
)

// newTestDatabase opens a fresh in-memory database with the full schema.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Content{},
		&models.SocialLink{},
		&models.ContactInfo{},
		&models.QuickLink{},
		&models.Technology{},
	))

	return New(db)
}
