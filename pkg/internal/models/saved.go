package models

import "time"

// SavedArticle is a bookmark; at most one row per (account, article) pair.
type SavedArticle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_saved_account_article"`
	ArticleID uint `json:"article_id" gorm:"uniqueIndex:idx_saved_account_article"`

	Article Article `json:"article"`
}
