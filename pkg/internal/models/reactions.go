package models

import "time"

type ReactionKind = string

// Wire values for reaction kinds; stored as-is.
const (
	ReactionKindLike    = ReactionKind("like")
	ReactionKindDislike = ReactionKind("dislike")
)

// Reaction holds at most one row per (article, account) pair; the composite
// unique index is the safety net for concurrent duplicate creates.
type Reaction struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Kind      ReactionKind `json:"kind" gorm:"column:reaction_type"`
	CreatedAt time.Time    `json:"created_at"`

	ArticleID uint `json:"article_id" gorm:"uniqueIndex:idx_reactions_article_account"`
	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_reactions_article_account"`
}

// ReactionOutcome names the transition a SetReaction call performed.
type ReactionOutcome string

const (
	ReactionOutcomeCreated = ReactionOutcome("created")
	ReactionOutcomeChanged = ReactionOutcome("changed")
	ReactionOutcomeRemoved = ReactionOutcome("removed")
)
