package content

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sort"

	"Recipe-Publisher/entities"

	"github.com/rs/zerolog/log"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

const fixtureWarning = "Using fixture data. Set SANITY_PROJECT_ID for real content."

type fixtureRepository struct{}

// NewFixtureRepository serves the bundled demo content. Every call decodes a fresh
// copy so callers can never mutate the fixtures.
func NewFixtureRepository() ContentRepository {
	return &fixtureRepository{}
}

func loadFixture(name string, out interface{}) error {
	data, err := fixtureFS.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func (r *fixtureRepository) recipes() ([]entities.Recipe, error) {
	log.Warn().Msg(fixtureWarning)

	var recipes []entities.Recipe
	if err := loadFixture("recipes.json", &recipes); err != nil {
		return nil, err
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].PublishedAt.After(recipes[j].PublishedAt)
	})
	return recipes, nil
}

func toCard(recipe entities.Recipe) entities.RecipeCard {
	return entities.RecipeCard{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Slug:        recipe.Slug,
		Excerpt:     recipe.Excerpt,
		MainImage:   recipe.MainImage,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		Servings:    recipe.Servings,
		Difficulty:  recipe.Difficulty,
		PublishedAt: recipe.PublishedAt,
		UpdatedAt:   recipe.UpdatedAt,
		Author:      recipe.Author,
		Categories:  recipe.Categories,
	}
}

func toCards(recipes []entities.Recipe) []entities.RecipeCard {
	cards := make([]entities.RecipeCard, 0, len(recipes))
	for _, recipe := range recipes {
		cards = append(cards, toCard(recipe))
	}
	return cards
}

func (r *fixtureRepository) GetAllRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	return toCards(recipes), nil
}

func (r *fixtureRepository) GetFeaturedRecipes(ctx context.Context) ([]entities.RecipeCard, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	if len(recipes) > FeaturedLimit {
		recipes = recipes[:FeaturedLimit]
	}
	return toCards(recipes), nil
}

func (r *fixtureRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Slug.Current == slug {
			return &recipes[i], nil
		}
	}
	return nil, nil
}

func (r *fixtureRepository) GetAllRecipeSlugs(ctx context.Context) ([]entities.RecipeSlug, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	slugs := make([]entities.RecipeSlug, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.Slug.Current == "" {
			continue
		}
		slugs = append(slugs, entities.RecipeSlug{Slug: recipe.Slug.Current})
	}
	return slugs, nil
}

func (r *fixtureRepository) GetAllCategories(ctx context.Context) ([]entities.Category, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}

	var categories []entities.Category
	if err := loadFixture("categories.json", &categories); err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].RecipeCount = 0
		for _, recipe := range recipes {
			if inCategory(recipe, categories[i].Slug.Current) {
				categories[i].RecipeCount++
			}
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Title < categories[j].Title
	})
	return categories, nil
}

func inCategory(recipe entities.Recipe, categorySlug string) bool {
	for _, c := range recipe.Categories {
		if c.Slug.Current == categorySlug {
			return true
		}
	}
	return false
}

func (r *fixtureRepository) GetRecipesByCategory(ctx context.Context, categorySlug string) ([]entities.RecipeCard, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	cards := []entities.RecipeCard{}
	for _, recipe := range recipes {
		if inCategory(recipe, categorySlug) {
			cards = append(cards, toCard(recipe))
		}
	}
	return cards, nil
}

func (r *fixtureRepository) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}

	var authors []entities.Author
	if err := loadFixture("authors.json", &authors); err != nil {
		return nil, err
	}
	for i := range authors {
		authors[i].RecipeCount = 0
		for _, recipe := range recipes {
			if recipe.Author != nil && recipe.Author.Slug.Current == authors[i].Slug.Current {
				authors[i].RecipeCount++
			}
		}
	}
	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Name < authors[j].Name
	})
	return authors, nil
}

func (r *fixtureRepository) GetRelatedRecipes(ctx context.Context, currentSlug string) ([]entities.RelatedRecipe, error) {
	recipes, err := r.recipes()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].UpdatedAt.After(recipes[j].UpdatedAt)
	})

	related := []entities.RelatedRecipe{}
	for _, recipe := range recipes {
		if recipe.Slug.Current == currentSlug {
			continue
		}
		related = append(related, entities.RelatedRecipe{
			ID:        recipe.ID,
			Title:     recipe.Title,
			Slug:      recipe.Slug,
			Excerpt:   recipe.Excerpt,
			MainImage: recipe.MainImage,
		})
		if len(related) == RelatedLimit {
			break
		}
	}
	return related, nil
}

func (r *fixtureRepository) GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error) {
	log.Warn().Msg(fixtureWarning)

	var settings entities.SiteSettings
	if err := loadFixture("site_settings.json", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
