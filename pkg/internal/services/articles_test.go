package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func TestArticleVisibility(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")
	stranger := newTestAuthor(t, "nadia")

	draft := newTestArticle(t, author, "draft-piece", models.ArticleStatusDraft)
	archived := newTestArticle(t, author, "archived-piece", models.ArticleStatusArchived)
	published := newTestArticle(t, author, "published-piece", models.ArticleStatusPublished)

	// Anonymous readers only see published articles; a valid slug in another
	// state behaves like a missing one.
	for _, slug := range []string{draft.Slug, archived.Slug} {
		_, err := GetArticleBySlug(FilterArticleVisible(database.C, nil), slug)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "slug %s", slug)
	}
	_, err := GetArticleBySlug(FilterArticleVisible(database.C, nil), published.Slug)
	assert.NoError(t, err)

	// Same for an authenticated non-owner.
	_, err = GetArticleBySlug(FilterArticleVisible(database.C, &stranger), draft.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The owner sees everything of their own.
	for _, slug := range []string{draft.Slug, archived.Slug, published.Slug} {
		_, err := GetArticleBySlug(FilterArticleVisible(database.C, &author), slug)
		assert.NoError(t, err, "slug %s", slug)
	}
}

func TestArticleStatusTransitions(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")

	item := newTestArticle(t, author, "lifecycle", models.ArticleStatusDraft)
	assert.Equal(t, models.ArticleStatusDraft, item.Status)

	// Archive straight from draft is not a legal move.
	_, err := ArchiveArticle(item)
	assert.Error(t, err)

	item, err = PublishArticle(item)
	require.NoError(t, err)
	assert.Equal(t, models.ArticleStatusPublished, item.Status)

	// Publishing twice is rejected.
	_, err = PublishArticle(item)
	assert.Error(t, err)

	item, err = ArchiveArticle(item)
	require.NoError(t, err)
	assert.Equal(t, models.ArticleStatusArchived, item.Status)

	// The administrative rollback lands back in draft.
	item, err = UnarchiveArticle(item)
	require.NoError(t, err)
	assert.Equal(t, models.ArticleStatusDraft, item.Status)
}

func TestArticleSlugScopedToPublishDate(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")

	yesterday := time.Now().Add(-24 * time.Hour)
	newTestArticle(t, author, "budget-vote", models.ArticleStatusPublished, func(v *models.Article) {
		v.PublishedAt = yesterday
	})

	// Same slug on a different day is fine.
	newTestArticle(t, author, "budget-vote", models.ArticleStatusPublished)

	// Same slug on the same day trips the unique index.
	_, err := NewArticle(author, models.Article{
		Title:       "Budget vote again",
		Slug:        "budget-vote",
		Content:     "more coverage",
		PublishedAt: yesterday,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Date-scoped lookup picks the right edition.
	item, err := GetArticleBySlug(database.C, "budget-vote", yesterday)
	require.NoError(t, err)
	assert.Equal(t, yesterday.Format("2006-01-02"), item.PublishedAt.Format("2006-01-02"))
}

func TestDeleteArticleCascades(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")
	reader := newTestAuthor(t, "nadia")

	item := newTestArticle(t, author, "doomed", models.ArticleStatusPublished)
	keeper := newTestArticle(t, author, "keeper", models.ArticleStatusPublished)

	_, _, err := SetReaction(reader.AccountID, item.ID, models.ReactionKindLike)
	require.NoError(t, err)
	_, err = ToggleSave(reader.AccountID, item.ID)
	require.NoError(t, err)
	_, _, err = SetReaction(reader.AccountID, keeper.ID, models.ReactionKindLike)
	require.NoError(t, err)

	require.NoError(t, DeleteArticle(item))

	var reactions, saves int64
	require.NoError(t, database.C.Model(&models.Reaction{}).Where("article_id = ?", item.ID).Count(&reactions).Error)
	require.NoError(t, database.C.Model(&models.SavedArticle{}).Where("article_id = ?", item.ID).Count(&saves).Error)
	assert.Zero(t, reactions)
	assert.Zero(t, saves)

	// Interactions on other articles are untouched.
	likes, _ := CountArticleReactions(keeper.ID)
	assert.EqualValues(t, 1, likes)
}

func TestDeleteCategoryDetachesArticles(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")
	category := newTestCategory(t, "economy")

	item := newTestArticle(t, author, "markets", models.ArticleStatusPublished, func(v *models.Article) {
		v.CategoryID = &category.ID
	})

	require.NoError(t, DeleteCategory(category))

	got, err := GetArticleWithID(database.C, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}

func TestFuzzySearchMatchesTitleContentAndAuthor(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "Wajdi")
	other := newTestAuthor(t, "nadia")

	newTestArticle(t, author, "first", models.ArticleStatusPublished, func(v *models.Article) {
		v.Title = "Harvest Season Opens"
		v.Content = "fields across the north"
	})
	newTestArticle(t, other, "second", models.ArticleStatusPublished, func(v *models.Article) {
		v.Title = "City Council Meets"
		v.Content = "the HARVEST subsidy debate continues"
	})
	newTestArticle(t, other, "third", models.ArticleStatusPublished, func(v *models.Article) {
		v.Title = "Weather Update"
		v.Content = "clear skies"
	})

	search := func(probe string) []models.Article {
		items, err := ListArticle(
			FilterArticleWithFuzzySearch(FilterArticlePublished(database.C.Model(&models.Article{})), probe),
			10, 0, "published_at DESC",
		)
		require.NoError(t, err)
		return items
	}

	// Case-insensitive across title and content.
	assert.Len(t, search("harvest"), 2)
	// Author name substring.
	assert.Len(t, search("wajdi"), 1)
	assert.Len(t, search("nothing-matches-this"), 0)
}

func TestMostViewedSkipsUnread(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")

	read := newTestArticle(t, author, "read", models.ArticleStatusPublished)
	newTestArticle(t, author, "unread", models.ArticleStatusPublished)

	BumpArticleViews(read)

	items, err := GetMostViewedArticles(5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, read.ID, items[0].ID)
}

func TestRelatedArticlesStayInCategory(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")
	sports := newTestCategory(t, "sports")
	culture := newTestCategory(t, "culture")

	main := newTestArticle(t, author, "derby", models.ArticleStatusPublished, func(v *models.Article) {
		v.CategoryID = &sports.ID
	})
	sibling := newTestArticle(t, author, "transfer", models.ArticleStatusPublished, func(v *models.Article) {
		v.CategoryID = &sports.ID
	})
	newTestArticle(t, author, "festival", models.ArticleStatusPublished, func(v *models.Article) {
		v.CategoryID = &culture.ID
	})
	newTestArticle(t, author, "hidden", models.ArticleStatusDraft, func(v *models.Article) {
		v.CategoryID = &sports.ID
	})

	related, err := GetRelatedArticles(main, 5)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, sibling.ID, related[0].ID)
}
