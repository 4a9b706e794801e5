package routes

import (
	"Recipe-Publisher/domain"
	"Recipe-Publisher/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ContentHandler handlers.ContentHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.Recipes()
	c.Taxonomy()
	c.Site()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	// static paths before :slug
	{
		recipes.Get("", c.ContentHandler.GetAllRecipes)
		recipes.Get("/featured", c.ContentHandler.GetFeaturedRecipes)
		recipes.Get("/slugs", c.ContentHandler.GetAllRecipeSlugs)
		recipes.Get("/:slug", c.ContentHandler.GetRecipeBySlug)
		recipes.Get("/:slug/related", c.ContentHandler.GetRelatedRecipes)
	}
}

func (c *Config) Taxonomy() {
	c.App.Get("/api/v1/categories", c.ContentHandler.GetAllCategories)
	c.App.Get("/api/v1/categories/:slug/recipes", c.ContentHandler.GetRecipesByCategory)
	c.App.Get("/api/v1/authors", c.ContentHandler.GetAllAuthors)
}

func (c *Config) Site() {
	c.App.Get("/api/v1/site-settings", c.ContentHandler.GetSiteSettings)
}
