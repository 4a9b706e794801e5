package recipe

import (
	"context"
	"encoding/json"
	"fmt"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/sanity"
)

const (
	publishedSitesQuery = `*[_type == "siteSettings" && published == true] {
    _id,
    siteId,
    siteName,
    domain
  }`

	siteAuthorsQuery = `*[_type == "author" && siteId->siteId.current == $siteId] | order(name asc) {
    _id,
    name,
    slug
  }`

	siteCategoriesQuery = `*[_type == "category" && siteId->siteId.current == $siteId] | order(title asc) {
    _id,
    title,
    slug
  }`
)

type (
	RecipeRepository interface {
		GetPublishedSites(ctx context.Context) ([]entities.SiteOption, error)
		GetAuthors(ctx context.Context, siteID string) ([]entities.Author, error)
		GetCategories(ctx context.Context, siteID string) ([]entities.Category, error)
		CreateRecipe(ctx context.Context, doc entities.RecipeDocument) (domain.RecipeCreatedResponse, error)
	}

	recipeRepository struct {
		client sanity.Client
	}
)

func NewRecipeRepository(client sanity.Client) RecipeRepository {
	return &recipeRepository{client: client}
}

func (r *recipeRepository) GetPublishedSites(ctx context.Context) ([]entities.SiteOption, error) {
	var sites []entities.SiteOption
	if err := r.client.Fetch(ctx, publishedSitesQuery, nil, &sites); err != nil {
		return nil, fmt.Errorf("fetch site settings: %w", err)
	}
	return sites, nil
}

func (r *recipeRepository) GetAuthors(ctx context.Context, siteID string) ([]entities.Author, error) {
	var authors []entities.Author
	if err := r.client.Fetch(ctx, siteAuthorsQuery, map[string]interface{}{"siteId": siteID}, &authors); err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}
	return authors, nil
}

func (r *recipeRepository) GetCategories(ctx context.Context, siteID string) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.client.Fetch(ctx, siteCategoriesQuery, map[string]interface{}{"siteId": siteID}, &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, doc entities.RecipeDocument) (domain.RecipeCreatedResponse, error) {
	res, err := r.client.Create(ctx, doc)
	if err != nil {
		return domain.RecipeCreatedResponse{}, err
	}

	created := domain.RecipeCreatedResponse{ID: res.ID, Title: doc.Title, Slug: doc.Slug.Current}
	if len(res.Document) > 0 {
		var stored struct {
			ID    string        `json:"_id"`
			Title string        `json:"title"`
			Slug  entities.Slug `json:"slug"`
		}
		if err := json.Unmarshal(res.Document, &stored); err == nil {
			if stored.ID != "" {
				created.ID = stored.ID
			}
			if stored.Title != "" {
				created.Title = stored.Title
			}
			if stored.Slug.Current != "" {
				created.Slug = stored.Slug.Current
			}
		}
	}
	return created, nil
}
