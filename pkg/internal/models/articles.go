package models

import (
	"time"

	"gorm.io/datatypes"
)

// Persisted status codes, kept compatible with the original data set.
const (
	ArticleStatusDraft     = "DF"
	ArticleStatusPublished = "PB"
	ArticleStatusArchived  = "AR"
)

type Article struct {
	BaseModel

	Title   string `json:"title" validate:"required,max=1024"`
	Slug    string `json:"slug" gorm:"uniqueIndex:idx_articles_slug_day" validate:"required"`
	Content string `json:"content" validate:"required"`

	// PublishDate is the date part of PublishedAt; slug uniqueness is scoped
	// to it, not global.
	PublishDate datatypes.Date `json:"publish_date" gorm:"uniqueIndex:idx_articles_slug_day"`
	PublishedAt time.Time      `json:"published_at"`

	Status     string `json:"status" gorm:"index;default:'DF'"`
	IsBreaking bool   `json:"is_breaking"`
	IsFeatured bool   `json:"is_featured"`
	Language   string `json:"language"`

	Image       *string                     `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	ViewCount int64 `json:"view_count"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category"`

	AuthorID uint   `json:"author_id"`
	Author   Author `json:"author"`

	Reactions []Reaction     `json:"reactions" gorm:"constraint:OnDelete:CASCADE"`
	SavedBy   []SavedArticle `json:"saved_by" gorm:"constraint:OnDelete:CASCADE"`

	Metric ArticleMetric `json:"metric" gorm:"-"`
}

// ArticleMetric is computed per request and never persisted.
type ArticleMetric struct {
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
	SaveCount    int64 `json:"save_count"`
}

func (v Article) IsPublished() bool {
	return v.Status == ArticleStatusPublished
}
