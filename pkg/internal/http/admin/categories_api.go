package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahifa-news/sahifa/pkg/internal/http/exts"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

func listCategories(c *fiber.Ctx) error {
	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	categories, err := services.ListCategory()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(categories)
}

func createCategory(c *fiber.Ctx) error {
	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Alias string `json:"alias" validate:"required,lowercase,max=256"`
		Name  string `json:"name" validate:"required,max=256"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(data.Alias, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func editCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("categoryId", 0)

	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Alias    string `json:"alias" validate:"required,lowercase,max=256"`
		Name     string `json:"name" validate:"required,max=256"`
		IsActive bool   `json:"is_active"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if category, err = services.EditCategory(category, data.Alias, data.Name, data.IsActive); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

// deleteCategory soft-disables would be the usual move; hard delete detaches
// the category's articles instead of removing them.
func deleteCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("categoryId", 0)

	if _, err := ensureAdmin(c); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
