package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		articles := api.Group("/articles").Name("Articles API")
		{
			articles.Get("/", listArticles)
			articles.Get("/search", searchArticles)
			articles.Get("/breaking", listBreakingArticles)
			articles.Get("/featured", listFeaturedArticles)
			articles.Get("/popular", listPopularArticles)
			articles.Post("/", createArticle)
			articles.Get("/:slug", getArticle)
			articles.Post("/:slug/react", reactArticle)
			articles.Post("/:slug/save", saveArticle)
			articles.Put("/:articleId", editArticle)
			articles.Delete("/:articleId", deleteArticle)
			articles.Post("/:articleId/publish", publishArticle)
		}

		categories := api.Group("/categories").Name("Categories API")
		{
			categories.Get("/", listCategories)
			categories.Get("/:category/articles", listCategoryArticles)
		}

		me := api.Group("/me").Name("Own Account API")
		{
			me.Get("/articles", listOwnArticles)
			me.Get("/saved", listSavedArticles)
			me.Get("/flashes", popFlashes)
		}

		api.Post("/contact", createContactMessage)
	}
}

func ensureAuthenticated(c *fiber.Ctx) (models.Author, error) {
	if user, authenticated := c.Locals("user").(models.Author); authenticated {
		return user, nil
	}
	return models.Author{}, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
}

func currentViewer(c *fiber.Ctx) *models.Author {
	if user, authenticated := c.Locals("user").(models.Author); authenticated {
		return &user
	}
	return nil
}
