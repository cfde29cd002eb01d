package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/authn"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func MapAdminAPIs(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin API")
	{
		admin.Get("/articles", listLatestArticles)
		admin.Post("/articles/:articleId/archive", archiveArticle)
		admin.Post("/articles/:articleId/unarchive", unarchiveArticle)

		admin.Get("/categories", listCategories)
		admin.Post("/categories", createCategory)
		admin.Put("/categories/:categoryId", editCategory)
		admin.Delete("/categories/:categoryId", deleteCategory)
	}
}

func ensureAdmin(c *fiber.Ctx) (models.Author, error) {
	user, isUser := c.Locals("user").(models.Author)
	claims, hasClaims := c.Locals("claims").(authn.Claims)
	if !isUser || !hasClaims {
		return models.Author{}, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	if !claims.IsAdmin {
		return models.Author{}, fiber.NewError(fiber.StatusForbidden, "administrator permission required")
	}
	return user, nil
}
