package db

import (
	"banking_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates or updates the institutions, members and accounts tables
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes.
	// Parents first so the cascading foreign keys can be added.
	if err := db.AutoMigrate(&domain.Institution{}, &domain.Member{}, &domain.Account{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
