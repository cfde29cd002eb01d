package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		raw        string
		totalPages int
		want       int
	}{
		{"1", 3, 1},
		{"3", 3, 3},
		{"0", 3, 1},
		{"-4", 3, 1},
		{"99", 3, 3},
		{"", 3, 1},
		{"banana", 3, 1},
		{"2.5", 3, 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampPage(tc.raw, tc.totalPages), "raw=%q", tc.raw)
	}
}

func TestPaginateArticlesClampsOutOfRange(t *testing.T) {
	resetTables(t)
	author := newTestAuthor(t, "wajdi")

	// 25 published articles at 10 per page = 3 pages, 5 on the last.
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		newTestArticle(t, author, fmt.Sprintf("story-%02d", i), models.ArticleStatusPublished, func(v *models.Article) {
			v.PublishedAt = base.Add(time.Duration(i) * time.Minute)
		})
	}

	tx := func() *gorm.DB {
		return FilterArticlePublished(database.C.Model(&models.Article{}))
	}

	page, err := PaginateArticles(tx(), "2", GeneralPageSize)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 25, page.Total)
	assert.Len(t, page.Items, 10)

	// Garbage and page zero fall back to the first page.
	for _, raw := range []string{"0", "abc", ""} {
		page, err := PaginateArticles(tx(), raw, GeneralPageSize)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page, "raw=%q", raw)
		assert.Len(t, page.Items, 10)
	}

	// Past the end clamps to the last page.
	page, err = PaginateArticles(tx(), "42", GeneralPageSize)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 5)

	// Ordered by publish time descending.
	page, err = PaginateArticles(tx(), "1", GeneralPageSize)
	require.NoError(t, err)
	assert.Equal(t, "story-24", page.Items[0].Slug)
}

func TestPaginateArticlesEmptySet(t *testing.T) {
	resetTables(t)

	page, err := PaginateArticles(FilterArticlePublished(database.C.Model(&models.Article{})), "7", GeneralPageSize)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestEmptyPageShape(t *testing.T) {
	page := EmptyPage(GeneralPageSize)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.Total)
}
