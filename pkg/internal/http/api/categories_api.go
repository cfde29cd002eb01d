package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func listCategories(c *fiber.Ctx) error {
	categories, err := services.ListActiveCategory()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(categories)
}

// listCategoryArticles is the category landing page: a disabled or unknown
// category is a plain not-found, and the page size is wider than the general
// listing.
func listCategoryArticles(c *fiber.Ctx) error {
	category, err := services.GetActiveCategory(c.Params("category"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterArticleWithCategory(
		services.FilterArticlePublished(database.C.Model(&models.Article{})),
		category,
	)

	page, err := services.PaginateArticles(tx, c.Query("page"), services.CategoryPageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"category": category,
		"page":     page,
	})
}
