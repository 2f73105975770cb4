package db

import (
	"github.com/metrika-dev/metrika/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	tables := []interface{}{
		&models.User{},
		&models.Indicator{},
		&models.Milestone{},
	}

	migrator := DB.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := DB.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
