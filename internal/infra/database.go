package infra

import (
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kozlekmarchewkowy/magazyn/internal/model"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// Connect establishes the GORM connection backed by pgx and ensures the two
// catalog tables exist. The handle is process-wide: construction is memoized,
// so repeated calls return the same client instead of reopening connections.
func Connect(dsn string) (*gorm.DB, error) {
	dbOnce.Do(func() {
		dbConn, dbErr = open(dsn)
	})
	return dbConn, dbErr
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		return nil, err
	}
	return db, nil
}
