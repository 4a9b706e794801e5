package content

import (
	"context"
	"fmt"

	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/sanity"
)

const (
	FeaturedLimit = 8
	RelatedLimit  = 6
)

type (
	ContentRepository interface {
		GetAllRecipes(ctx context.Context) ([]entities.RecipeCard, error)
		GetFeaturedRecipes(ctx context.Context) ([]entities.RecipeCard, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetAllRecipeSlugs(ctx context.Context) ([]entities.RecipeSlug, error)
		GetAllCategories(ctx context.Context) ([]entities.Category, error)
		GetRecipesByCategory(ctx context.Context, categorySlug string) ([]entities.RecipeCard, error)
		GetAllAuthors(ctx context.Context) ([]entities.Author, error)
		GetRelatedRecipes(ctx context.Context, currentSlug string) ([]entities.RelatedRecipe, error)
		GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error)
	}

	contentRepository struct {
		client sanity.Client
		siteID string
	}
)

// NewContentRepository picks the data source once: the store when a client for a
// configured project is given, the bundled fixtures otherwise.
func NewContentRepository(client sanity.Client, siteID string) ContentRepository {
	if client == nil || client.ProjectID() == "" {
		return NewFixtureRepository()
	}
	return &contentRepository{client: client, siteID: siteID}
}

func (r *contentRepository) fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	merged := map[string]interface{}{"siteId": r.siteID}
	for k, v := range params {
		merged[k] = v
	}
	return r.client.Fetch(ctx, query, merged, out)
}

func (r *contentRepository) GetAllRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	var recipes []entities.RecipeCard
	if err := r.fetch(ctx, allRecipesQuery, nil, &recipes); err != nil {
		return nil, fmt.Errorf("get all recipes: %w", err)
	}
	return recipes, nil
}

func (r *contentRepository) GetFeaturedRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	var recipes []entities.RecipeCard
	if err := r.fetch(ctx, featuredRecipesQuery, nil, &recipes); err != nil {
		return nil, fmt.Errorf("get featured recipes: %w", err)
	}
	return recipes, nil
}

func (r *contentRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe *entities.Recipe
	if err := r.fetch(ctx, recipeBySlugQuery, map[string]interface{}{"slug": slug}, &recipe); err != nil {
		return nil, fmt.Errorf("get recipe %q: %w", slug, err)
	}
	return recipe, nil
}

func (r *contentRepository) GetAllRecipeSlugs(ctx context.Context) ([]entities.RecipeSlug, error) {
	var slugs []entities.RecipeSlug
	if err := r.fetch(ctx, allRecipeSlugsQuery, nil, &slugs); err != nil {
		return nil, fmt.Errorf("get recipe slugs: %w", err)
	}
	return slugs, nil
}

func (r *contentRepository) GetAllCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.fetch(ctx, allCategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return categories, nil
}

func (r *contentRepository) GetRecipesByCategory(ctx context.Context, categorySlug string) ([]entities.RecipeCard, error) {
	var recipes []entities.RecipeCard
	if err := r.fetch(ctx, recipesByCategoryQuery, map[string]interface{}{"categorySlug": categorySlug}, &recipes); err != nil {
		return nil, fmt.Errorf("get recipes for category %q: %w", categorySlug, err)
	}
	return recipes, nil
}

func (r *contentRepository) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	if err := r.fetch(ctx, allAuthorsQuery, nil, &authors); err != nil {
		return nil, fmt.Errorf("get authors: %w", err)
	}
	return authors, nil
}

func (r *contentRepository) GetRelatedRecipes(ctx context.Context, currentSlug string) ([]entities.RelatedRecipe, error) {
	var recipes []entities.RelatedRecipe
	if err := r.fetch(ctx, relatedRecipesQuery, map[string]interface{}{"currentSlug": currentSlug}, &recipes); err != nil {
		return nil, fmt.Errorf("get related recipes for %q: %w", currentSlug, err)
	}
	return recipes, nil
}

func (r *contentRepository) GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error) {
	var settings *entities.SiteSettings
	if err := r.fetch(ctx, siteSettingsQuery, nil, &settings); err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	return settings, nil
}
