package services

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

// BumpArticleViews adds one to the view counter with a single in-database
// increment, so concurrent readers cannot lose updates. The count is
// best-effort analytics: a failed bump is logged and the read proceeds.
func BumpArticleViews(item models.Article) models.Article {
	if err := database.C.Model(&models.Article{}).
		Where("id = ?", item.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		log.Warn().Err(err).Uint("article", item.ID).Msg("Unable to bump article view counter...")
		return item
	}

	item.ViewCount++
	return item
}
