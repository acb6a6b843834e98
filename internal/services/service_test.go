package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photo-backend/internal/models"
)

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	dbPath := "./test_services_" + t.Name() + ".db"

	// _foreign_keys=on so sqlite actually enforces the cascade constraints
	db, err := gorm.Open(sqlite.Open("file:"+dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Photo{}, &models.ActivityLog{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}
