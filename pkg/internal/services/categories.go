package services

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm"

	localCache "github.com/sahifa-news/sahifa/pkg/internal/cache"
	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

const activeCategoriesCacheKey = "categories-active"

func ListCategory() ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Order("name ASC").Find(&categories).Error

	return categories, err
}

// ListActiveCategory serves the navigation bar on every page, so the result
// sits in the local cache for a few minutes between category mutations.
func ListActiveCategory() ([]models.Category, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	if cached, err := marshal.Get(ctx, activeCategoriesCacheKey, new([]models.Category)); err == nil {
		return *cached.(*[]models.Category), nil
	}

	var categories []models.Category
	if err := database.C.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return categories, err
	}

	_ = marshal.Set(ctx, activeCategoriesCacheKey, categories, store.WithExpiration(5*time.Minute))

	return categories, nil
}

func FlushCategoryCache() {
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Delete(context.Background(), activeCategoriesCacheKey)
}

func GetCategory(alias string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{Alias: alias}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

// GetActiveCategory backs the public category pages: a disabled category is
// indistinguishable from a missing one.
func GetActiveCategory(alias string) (models.Category, error) {
	var category models.Category
	if err := database.C.
		Where("alias = ? AND is_active = ?", alias, true).
		First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{
		BaseModel: models.BaseModel{ID: id},
	}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(alias, name string) (models.Category, error) {
	category := models.Category{
		Alias:    alias,
		Name:     name,
		IsActive: true,
	}

	err := database.C.Create(&category).Error
	if err == nil {
		FlushCategoryCache()
	}

	return category, err
}

func EditCategory(category models.Category, alias, name string, isActive bool) (models.Category, error) {
	category.Alias = alias
	category.Name = name
	category.IsActive = isActive

	err := database.C.Save(&category).Error
	if err == nil {
		FlushCategoryCache()
	}

	return category, err
}

// DeleteCategory detaches referencing articles instead of deleting them, so
// the archive keeps its history with an empty category.
func DeleteCategory(category models.Category) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err == nil {
		FlushCategoryCache()
	}
	return err
}
