package database

import (
	"github.com/sahifa-news/sahifa/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Author{},
	&models.Category{},
	&models.Article{},
	&models.ContactMessage{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Reaction{},
			&models.SavedArticle{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
