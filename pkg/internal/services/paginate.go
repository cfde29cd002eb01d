package services

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

// Fixed page sizes per listing kind.
const (
	GeneralPageSize  = 10
	CategoryPageSize = 12
)

type Page struct {
	Items      []models.Article `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// ClampPage maps any raw page parameter onto a valid page number: garbage and
// out-of-range-low become page 1, past-the-end becomes the last page. Listing
// calls never fail on pagination input.
func ClampPage(raw string, totalPages int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PaginateArticles counts the filtered set, clamps the requested page and
// returns that slice ordered by publish time descending.
func PaginateArticles(tx *gorm.DB, rawPage string, pageSize int) (Page, error) {
	out := Page{PageSize: pageSize}

	// Count on a cloned session so its select clause cannot leak into the
	// page query below.
	total, err := CountArticle(tx.Session(&gorm.Session{}))
	if err != nil {
		return out, err
	}
	out.Total = total

	out.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}

	out.Page = ClampPage(rawPage, out.TotalPages)

	items, err := ListArticle(tx, pageSize, (out.Page-1)*pageSize, "published_at DESC")
	if err != nil {
		return out, err
	}
	out.Items = items

	return out, nil
}

// EmptyPage is what an empty search probe yields: zero results, not the
// unfiltered set.
func EmptyPage(pageSize int) Page {
	return Page{
		Items:      []models.Article{},
		Page:       1,
		PageSize:   pageSize,
		TotalPages: 1,
	}
}
