package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func FilterArticlePublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ?", models.ArticleStatusPublished)
}

// FilterArticleVisible keeps published articles, plus the viewer's own drafts
// and archived pieces. Everything else behaves as if the slug did not exist.
func FilterArticleVisible(tx *gorm.DB, viewer *models.Author) *gorm.DB {
	if viewer == nil {
		return FilterArticlePublished(tx)
	}
	return tx.Where("status = ? OR author_id = ?", models.ArticleStatusPublished, viewer.ID)
}

func FilterArticleWithCategory(tx *gorm.DB, category models.Category) *gorm.DB {
	return tx.Where("category_id = ?", category.ID)
}

func FilterArticleWithAuthor(tx *gorm.DB, authorId uint) *gorm.DB {
	return tx.Where("author_id = ?", authorId)
}

func FilterArticleBreaking(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_breaking = ?", true)
}

func FilterArticleFeatured(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_featured = ?", true)
}

func FilterArticleWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	probe = "%" + probe + "%"
	return tx.
		Joins("LEFT JOIN authors ON authors.id = articles.author_id").
		Where(
			"LOWER(articles.title) LIKE LOWER(?) OR LOWER(articles.content) LIKE LOWER(?) OR LOWER(authors.name) LIKE LOWER(?)",
			probe, probe, probe,
		)
}

func PreloadArticleGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Category").
		Preload("Author")
}

func GetArticleWithID(tx *gorm.DB, id uint) (models.Article, error) {
	var item models.Article
	if err := PreloadArticleGeneral(tx).
		Where("articles.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

// GetArticleBySlug resolves a slug, optionally scoped to a publish date since
// slug uniqueness only holds per day. Without a date the most recent match
// wins.
func GetArticleBySlug(tx *gorm.DB, slug string, date ...time.Time) (models.Article, error) {
	if len(date) > 0 {
		tx = tx.Where("publish_date = ?", datatypes.Date(date[0]))
	}

	var item models.Article
	if err := PreloadArticleGeneral(tx).
		Where("slug = ?", slug).
		Order("published_at DESC").
		First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

func CountArticle(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.
		Model(&models.Article{}).
		Distinct("articles.id").
		Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

func ListArticle(tx *gorm.DB, take int, offset int, order any) ([]models.Article, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Article
	if err := PreloadArticleGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// ListArticleMinimal skips preloads; meant for sidebar slices and admin grids.
func ListArticleMinimal(tx *gorm.DB, take int, order any) ([]models.Article, error) {
	if take > 500 {
		take = 500
	}

	var items []models.Article
	if err := tx.
		Limit(take).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func GetMostViewedArticles(take int) ([]models.Article, error) {
	return ListArticleMinimal(
		FilterArticlePublished(database.C).Where("view_count >= ?", 1),
		take,
		"view_count DESC",
	)
}

func GetRelatedArticles(item models.Article, take int) ([]models.Article, error) {
	if item.CategoryID == nil {
		return nil, nil
	}
	return ListArticleMinimal(
		FilterArticlePublished(database.C).
			Where("category_id = ?", *item.CategoryID).
			Where("id != ?", item.ID),
		take,
		"published_at DESC",
	)
}

var articleSlugRegexp = regexp.MustCompile(`^[a-z0-9\p{Arabic}][a-z0-9\p{Arabic}-]*$`)

func publishDateOf(moment time.Time) datatypes.Date {
	y, m, d := moment.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, moment.Location()))
}

func NewArticle(author models.Author, item models.Article) (models.Article, error) {
	if !articleSlugRegexp.MatchString(item.Slug) {
		return item, fmt.Errorf("invalid article slug: %s", item.Slug)
	}

	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}

	item.AuthorID = author.ID
	item.Author = author
	item.Status = models.ArticleStatusDraft
	item.PublishDate = publishDateOf(item.PublishedAt)
	item.Language = DetectLanguage(item.Content)
	item.ViewCount = 0

	if item.CategoryID != nil {
		category, err := GetCategoryWithID(*item.CategoryID)
		if err != nil {
			return item, fmt.Errorf("unable to find category to attach: %v", err)
		}
		item.Category = &category
	}

	log.Debug().Str("slug", item.Slug).Msg("Saving new article draft...")
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditArticle(item models.Article) (models.Article, error) {
	if !articleSlugRegexp.MatchString(item.Slug) {
		return item, fmt.Errorf("invalid article slug: %s", item.Slug)
	}

	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	item.PublishDate = publishDateOf(item.PublishedAt)
	item.Language = DetectLanguage(item.Content)

	err := database.C.Save(&item).Error

	return item, err
}

// DeleteArticle removes the article and every reaction and bookmark pointing
// at it in one transaction, so no orphan rows survive the delete.
func DeleteArticle(item models.Article) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", item.ID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", item.ID).Delete(&models.SavedArticle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// Status transitions: Draft -> Published -> Archived, plus the administrative
// Archived -> Draft rollback. Anything else is rejected.
func PublishArticle(item models.Article) (models.Article, error) {
	if item.Status != models.ArticleStatusDraft {
		return item, fmt.Errorf("only drafts can be published, article is %s", item.Status)
	}
	return transitionArticle(item, models.ArticleStatusPublished)
}

func ArchiveArticle(item models.Article) (models.Article, error) {
	if item.Status != models.ArticleStatusPublished {
		return item, fmt.Errorf("only published articles can be archived, article is %s", item.Status)
	}
	return transitionArticle(item, models.ArticleStatusArchived)
}

func UnarchiveArticle(item models.Article) (models.Article, error) {
	if item.Status != models.ArticleStatusArchived {
		return item, fmt.Errorf("only archived articles can be unarchived, article is %s", item.Status)
	}
	return transitionArticle(item, models.ArticleStatusDraft)
}

func transitionArticle(item models.Article, status string) (models.Article, error) {
	item.Status = status
	if err := database.C.Model(&item).Update("status", status).Error; err != nil {
		return item, err
	}
	return item, nil
}

// LoadArticleMetrics fills the per-request reaction and bookmark counters.
func LoadArticleMetrics(item models.Article) models.Article {
	likes, dislikes := CountArticleReactions(item.ID)
	item.Metric = models.ArticleMetric{
		LikeCount:    likes,
		DislikeCount: dislikes,
		SaveCount:    CountArticleSaves(item.ID),
	}
	return item
}

func BatchLoadArticleMetrics(items []models.Article) []models.Article {
	return lo.Map(items, func(item models.Article, index int) models.Article {
		return LoadArticleMetrics(item)
	})
}
