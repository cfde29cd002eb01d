package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func saveArticle(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	item, err := services.GetArticleBySlug(
		services.FilterArticleVisible(database.C, &user),
		c.Params("slug"),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	saved, err := services.ToggleSave(user.AccountID, item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"saved": saved,
	})
}

func listSavedArticles(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	items, err := services.ListSavedArticles(user.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}
