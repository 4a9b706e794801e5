package handlers

import (
	"errors"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/internal/api/presenters"
	"Recipe-Publisher/pkg/content"

	"github.com/gofiber/fiber/v2"
)

type (
	ContentHandler interface {
		GetAllRecipes(c *fiber.Ctx) error
		GetFeaturedRecipes(c *fiber.Ctx) error
		GetRecipeBySlug(c *fiber.Ctx) error
		GetAllRecipeSlugs(c *fiber.Ctx) error
		GetRelatedRecipes(c *fiber.Ctx) error
		GetAllCategories(c *fiber.Ctx) error
		GetRecipesByCategory(c *fiber.Ctx) error
		GetAllAuthors(c *fiber.Ctx) error
		GetSiteSettings(c *fiber.Ctx) error
	}

	contentHandler struct {
		contentService content.ContentService
	}
)

func NewContentHandler(contentService content.ContentService) ContentHandler {
	return &contentHandler{
		contentService: contentService,
	}
}

func (h *contentHandler) GetAllRecipes(c *fiber.Ctx) error {
	res, err := h.contentService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *contentHandler) GetFeaturedRecipes(c *fiber.Ctx) error {
	res, err := h.contentService.GetFeaturedRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeaturedRecipes)
}

func (h *contentHandler) GetRecipeBySlug(c *fiber.Ctx) error {
	res, err := h.contentService.GetRecipeBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *contentHandler) GetAllRecipeSlugs(c *fiber.Ctx) error {
	res, err := h.contentService.GetAllRecipeSlugs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipeSlugs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeSlugs)
}

func (h *contentHandler) GetRelatedRecipes(c *fiber.Ctx) error {
	res, err := h.contentService.GetRelatedRecipes(c.Context(), c.Params("slug"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRelatedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRelatedRecipes)
}

func (h *contentHandler) GetAllCategories(c *fiber.Ctx) error {
	res, err := h.contentService.GetAllCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *contentHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	res, err := h.contentService.GetRecipesByCategory(c.Context(), c.Params("slug"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetCategoryRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategoryRecipes)
}

func (h *contentHandler) GetAllAuthors(c *fiber.Ctx) error {
	res, err := h.contentService.GetAllAuthors(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetAuthors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAuthors)
}

func (h *contentHandler) GetSiteSettings(c *fiber.Ctx) error {
	res, err := h.contentService.GetSiteSettings(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSiteSettingsNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetSiteSettings, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetSiteSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSiteSettings)
}
