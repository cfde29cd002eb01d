package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/http/exts"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func listArticles(c *fiber.Ctx) error {
	tx := services.FilterArticlePublished(database.C.Model(&models.Article{}))

	if len(c.Query("category")) > 0 {
		category, err := services.GetActiveCategory(c.Query("category"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		tx = services.FilterArticleWithCategory(tx, category)
	}

	page, err := services.PaginateArticles(tx, c.Query("page"), services.GeneralPageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page)
}

func searchArticles(c *fiber.Ctx) error {
	probe := c.Query("q")
	if len(probe) == 0 {
		return c.JSON(services.EmptyPage(services.GeneralPageSize))
	}

	tx := services.FilterArticleWithFuzzySearch(
		services.FilterArticlePublished(database.C.Model(&models.Article{})),
		probe,
	)

	page, err := services.PaginateArticles(tx, c.Query("page"), services.GeneralPageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page)
}

func listBreakingArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 6)

	items, err := services.ListArticleMinimal(
		services.FilterArticleBreaking(services.FilterArticlePublished(database.C)),
		take,
		"published_at DESC",
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func listFeaturedArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 6)

	items, err := services.ListArticleMinimal(
		services.FilterArticleFeatured(services.FilterArticlePublished(database.C)),
		take,
		"published_at DESC",
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func listPopularArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 5)

	items, err := services.GetMostViewedArticles(take)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func getArticle(c *fiber.Ctx) error {
	slug := c.Params("slug")
	viewer := currentViewer(c)

	tx := services.FilterArticleVisible(database.C, viewer)

	var item models.Article
	var err error
	if len(c.Query("date")) > 0 {
		date, parseErr := time.Parse("2006-01-02", c.Query("date"))
		if parseErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must look like 2006-01-02")
		}
		item, err = services.GetArticleBySlug(tx, slug, date)
	} else {
		item, err = services.GetArticleBySlug(tx, slug)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.IsPublished() {
		item = services.BumpArticleViews(item)
	}
	item = services.LoadArticleMetrics(item)

	related, _ := services.GetRelatedArticles(item, 5)
	latest, _ := services.ListArticleMinimal(
		services.FilterArticlePublished(database.C),
		5,
		"published_at DESC",
	)

	var viewerReaction *models.Reaction
	var viewerSaved bool
	if viewer != nil {
		if reaction, ok := services.GetAccountReaction(viewer.AccountID, item.ID); ok {
			viewerReaction = &reaction
		}
		viewerSaved = services.IsArticleSaved(viewer.AccountID, item.ID)
	}

	return c.JSON(fiber.Map{
		"article":         item,
		"related":         related,
		"latest":          latest,
		"viewer_reaction": viewerReaction,
		"viewer_saved":    viewerSaved,
	})
}

func createArticle(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Title       string     `json:"title" validate:"required,max=1024"`
		Slug        string     `json:"slug" validate:"required,max=256"`
		Content     string     `json:"content" validate:"required"`
		Image       *string    `json:"image"`
		Attachments []string   `json:"attachments"`
		CategoryID  *uint      `json:"category_id"`
		PublishedAt *time.Time `json:"published_at"`
		IsBreaking  bool       `json:"is_breaking"`
		IsFeatured  bool       `json:"is_featured"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Article{
		Title:       data.Title,
		Slug:        data.Slug,
		Content:     data.Content,
		Image:       data.Image,
		Attachments: data.Attachments,
		CategoryID:  data.CategoryID,
		IsBreaking:  data.IsBreaking,
		IsFeatured:  data.IsFeatured,
	}
	if data.PublishedAt != nil {
		item.PublishedAt = *data.PublishedAt
	}

	item, err = services.NewArticle(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Title       string     `json:"title" validate:"required,max=1024"`
		Slug        string     `json:"slug" validate:"required,max=256"`
		Content     string     `json:"content" validate:"required"`
		Image       *string    `json:"image"`
		Attachments []string   `json:"attachments"`
		CategoryID  *uint      `json:"category_id"`
		PublishedAt *time.Time `json:"published_at"`
		IsBreaking  bool       `json:"is_breaking"`
		IsFeatured  bool       `json:"is_featured"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var item models.Article
	if err := database.C.Where(models.Article{
		BaseModel: models.BaseModel{ID: uint(id)},
		AuthorID:  user.ID,
	}).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item.Title = data.Title
	item.Slug = data.Slug
	item.Content = data.Content
	item.Image = data.Image
	item.Attachments = data.Attachments
	item.CategoryID = data.CategoryID
	item.IsBreaking = data.IsBreaking
	item.IsFeatured = data.IsFeatured
	if data.PublishedAt != nil {
		item.PublishedAt = *data.PublishedAt
	}

	if item, err = services.EditArticle(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deleteArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var item models.Article
	if err := database.C.Where(models.Article{
		BaseModel: models.BaseModel{ID: uint(id)},
		AuthorID:  user.ID,
	}).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteArticle(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func publishArticle(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("articleId", 0)
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var item models.Article
	if err := database.C.Where(models.Article{
		BaseModel: models.BaseModel{ID: uint(id)},
		AuthorID:  user.ID,
	}).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item, err = services.PublishArticle(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func listOwnArticles(c *fiber.Ctx) error {
	take := c.QueryInt("take", 5)
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	items, err := services.ListArticle(
		services.FilterArticleWithAuthor(database.C, user.ID),
		take, 0,
		"published_at DESC",
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(services.BatchLoadArticleMetrics(items))
}
