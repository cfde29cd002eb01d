package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

// ToggleSave flips the bookmark for one (account, article) pair and reports
// whether the article is saved afterwards. A create that loses the race
// against an identical request settles on saved=true instead of erroring.
func ToggleSave(accountId, articleId uint) (bool, error) {
	var existing models.SavedArticle
	err := database.C.
		Where("account_id = ? AND article_id = ?", accountId, articleId).
		First(&existing).Error
	if err == nil {
		if err := database.C.Delete(&existing).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	row := models.SavedArticle{
		AccountID: accountId,
		ArticleID: articleId,
	}
	if err := database.C.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

func IsArticleSaved(accountId, articleId uint) bool {
	var count int64
	if err := database.C.Model(&models.SavedArticle{}).
		Where("account_id = ? AND article_id = ?", accountId, articleId).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func ListSavedArticles(accountId uint) ([]models.SavedArticle, error) {
	var items []models.SavedArticle
	if err := database.C.
		Where("account_id = ?", accountId).
		Preload("Article").
		Preload("Article.Category").
		Preload("Article.Author").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

func CountArticleSaves(articleId uint) int64 {
	var count int64
	if err := database.C.Model(&models.SavedArticle{}).
		Where("article_id = ?", articleId).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}
