package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
)

func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250901_create_portfolio_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&repository.User{},
					&repository.Project{},
					&repository.Tool{},
					&repository.Skill{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("tools", "projects", "skills", "users")
			},
		},
	}
}
