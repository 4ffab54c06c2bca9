package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.User{},
		&repository.Project{},
		&repository.Tool{},
		&repository.Skill{},
	)
}
