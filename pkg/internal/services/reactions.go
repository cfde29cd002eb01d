package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

// SetReaction runs the three-state toggle (none / like / dislike) for one
// (account, article) pair:
//
//   - no row yet: create one with the requested kind (created)
//   - row holds the same kind: drop it (removed)
//   - row holds the other kind: rewrite it in place (changed)
//
// The read-then-write is racy under concurrent identical requests; the
// composite unique index turns the losing create into a duplicated-key error
// which is resolved here by re-reading, never surfaced to the caller.
func SetReaction(accountId, articleId uint, kind models.ReactionKind) (models.ReactionOutcome, models.Reaction, error) {
	if kind != models.ReactionKindLike && kind != models.ReactionKindDislike {
		return "", models.Reaction{}, fmt.Errorf("unsupported reaction kind: %s", kind)
	}

	var existing models.Reaction
	err := database.C.
		Where("article_id = ? AND account_id = ?", articleId, accountId).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", existing, err
		}

		reaction := models.Reaction{
			Kind:      kind,
			ArticleID: articleId,
			AccountID: accountId,
		}
		if err := database.C.Create(&reaction).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a create race against an identical request; converge
				// on the row the winner wrote.
				return settleReactionConflict(accountId, articleId, kind)
			}
			return "", reaction, err
		}

		return models.ReactionOutcomeCreated, reaction, nil
	}

	if existing.Kind == kind {
		if err := database.C.Delete(&existing).Error; err != nil {
			return "", existing, err
		}
		return models.ReactionOutcomeRemoved, existing, nil
	}

	existing.Kind = kind
	if err := database.C.Model(&existing).Update("reaction_type", kind).Error; err != nil {
		return "", existing, err
	}
	return models.ReactionOutcomeChanged, existing, nil
}

func settleReactionConflict(accountId, articleId uint, kind models.ReactionKind) (models.ReactionOutcome, models.Reaction, error) {
	log.Debug().
		Uint("account", accountId).Uint("article", articleId).
		Msg("Reaction create hit the unique index, settling idempotently...")

	var row models.Reaction
	if err := database.C.
		Where("article_id = ? AND account_id = ?", articleId, accountId).
		First(&row).Error; err != nil {
		return "", row, err
	}

	if row.Kind == kind {
		return models.ReactionOutcomeCreated, row, nil
	}

	row.Kind = kind
	if err := database.C.Model(&row).Update("reaction_type", kind).Error; err != nil {
		return "", row, err
	}
	return models.ReactionOutcomeChanged, row, nil
}

func GetAccountReaction(accountId, articleId uint) (models.Reaction, bool) {
	var row models.Reaction
	if err := database.C.
		Where("article_id = ? AND account_id = ?", articleId, accountId).
		First(&row).Error; err != nil {
		return row, false
	}
	return row, true
}

func CountArticleReactions(articleId uint) (int64, int64) {
	var likes, dislikes int64
	if err := database.C.Model(&models.Reaction{}).
		Where("article_id = ? AND reaction_type = ?", articleId, models.ReactionKindLike).
		Count(&likes).Error; err != nil {
		return 0, 0
	}
	if err := database.C.Model(&models.Reaction{}).
		Where("article_id = ? AND reaction_type = ?", articleId, models.ReactionKindDislike).
		Count(&dislikes).Error; err != nil {
		return likes, 0
	}
	return likes, dislikes
}
