package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/http/exts"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func reactArticle(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Kind models.ReactionKind `json:"kind" validate:"required,oneof=like dislike"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetArticleBySlug(
		services.FilterArticleVisible(database.C, &user),
		c.Params("slug"),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	outcome, _, err := services.SetReaction(user.AccountID, item.ID, data.Kind)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	likes, dislikes := services.CountArticleReactions(item.ID)

	return c.
		Status(lo.Ternary(outcome == models.ReactionOutcomeCreated, fiber.StatusCreated, fiber.StatusOK)).
		JSON(fiber.Map{
			"outcome":       outcome,
			"like_count":    likes,
			"dislike_count": dislikes,
		})
}
