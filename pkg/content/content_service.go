package content

import (
	"context"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
)

type (
	ContentService interface {
		GetAllRecipes(ctx context.Context) ([]entities.RecipeCard, error)
		GetFeaturedRecipes(ctx context.Context) ([]entities.RecipeCard, error)
		GetRecipeBySlug(ctx context.Context, slug string) (entities.Recipe, error)
		GetAllRecipeSlugs(ctx context.Context) ([]entities.RecipeSlug, error)
		GetAllCategories(ctx context.Context) ([]entities.Category, error)
		GetRecipesByCategory(ctx context.Context, categorySlug string) ([]entities.RecipeCard, error)
		GetAllAuthors(ctx context.Context) ([]entities.Author, error)
		GetRelatedRecipes(ctx context.Context, currentSlug string) ([]entities.RelatedRecipe, error)
		GetSiteSettings(ctx context.Context) (entities.SiteSettings, error)
	}

	contentService struct {
		contentRepository ContentRepository
	}
)

// NewContentService wraps a repository for the HTTP surface: lists are never nil and
// missing single documents become domain errors.
func NewContentService(contentRepository ContentRepository) ContentService {
	return &contentService{contentRepository: contentRepository}
}

func orEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

func (s *contentService) GetAllRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	return orEmpty(s.contentRepository.GetAllRecipes(ctx))
}

func (s *contentService) GetFeaturedRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	return orEmpty(s.contentRepository.GetFeaturedRecipes(ctx))
}

func (s *contentService) GetRecipeBySlug(ctx context.Context, slug string) (entities.Recipe, error) {
	recipe, err := s.contentRepository.GetRecipeBySlug(ctx, slug)
	if err != nil {
		return entities.Recipe{}, err
	}
	if recipe == nil {
		return entities.Recipe{}, domain.ErrRecipeNotFound
	}
	return *recipe, nil
}

func (s *contentService) GetAllRecipeSlugs(ctx context.Context) ([]entities.RecipeSlug, error) {
	return orEmpty(s.contentRepository.GetAllRecipeSlugs(ctx))
}

func (s *contentService) GetAllCategories(ctx context.Context) ([]entities.Category, error) {
	return orEmpty(s.contentRepository.GetAllCategories(ctx))
}

func (s *contentService) GetRecipesByCategory(ctx context.Context, categorySlug string) ([]entities.RecipeCard, error) {
	return orEmpty(s.contentRepository.GetRecipesByCategory(ctx, categorySlug))
}

func (s *contentService) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	return orEmpty(s.contentRepository.GetAllAuthors(ctx))
}

func (s *contentService) GetRelatedRecipes(ctx context.Context, currentSlug string) ([]entities.RelatedRecipe, error) {
	return orEmpty(s.contentRepository.GetRelatedRecipes(ctx, currentSlug))
}

func (s *contentService) GetSiteSettings(ctx context.Context) (entities.SiteSettings, error) {
	settings, err := s.contentRepository.GetSiteSettings(ctx)
	if err != nil {
		return entities.SiteSettings{}, err
	}
	if settings == nil {
		return entities.SiteSettings{}, domain.ErrSiteSettingsNotFound
	}
	return *settings, nil
}
