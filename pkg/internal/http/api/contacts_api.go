package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/http/exts"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func createContactMessage(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Name    string `json:"name" validate:"required,max=256"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required,max=1024"`
		Body    string `json:"body" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewContactMessage(user.AccountID, models.ContactMessage{
		Name:    data.Name,
		Email:   data.Email,
		Subject: data.Subject,
		Body:    data.Body,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func popFlashes(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	return c.JSON(services.PopFlashes(user.AccountID))
}
