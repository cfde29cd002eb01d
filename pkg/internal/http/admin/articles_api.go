package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

// listLatestArticles ignores publication state on purpose; this is the
// newsroom dashboard, not a public listing.
func listLatestArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 5)

	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	items, err := services.ListArticle(database.C, take, 0, "published_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func archiveArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	item, err := services.GetArticleWithID(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item, err = services.ArchiveArticle(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func unarchiveArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)

	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	item, err := services.GetArticleWithID(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item, err = services.UnarchiveArticle(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}
