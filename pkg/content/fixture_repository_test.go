package content_test

import (
	"context"
	"testing"

	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureRepositoryRecipes(t *testing.T) {
	repo := content.NewContentRepository(nil, "")
	ctx := context.Background()

	all, err := repo.GetAllRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "chocolate-chip-cookies", all[0].Slug.Current)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].PublishedAt.After(all[i-1].PublishedAt), "recipes must be newest first")
	}

	featured, err := repo.GetFeaturedRecipes(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(featured), content.FeaturedLimit)
	assert.Equal(t, all, featured)
}

func TestFixtureRepositoryRecipeBySlug(t *testing.T) {
	repo := content.NewFixtureRepository()
	ctx := context.Background()

	recipe, err := repo.GetRecipeBySlug(ctx, "chocolate-chip-cookies")
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "Classic Chocolate Chip Cookies", recipe.Title)
	assert.Equal(t, entities.FlexInt(15), recipe.PrepTime)
	assert.Equal(t, entities.FlexInt(12), recipe.CookTime)
	assert.Equal(t, "27 Minutes", recipe.TotalTime)
	require.NotNil(t, recipe.Author)
	assert.Equal(t, "Sarah Johnson", recipe.Author.Name)
	require.NotNil(t, recipe.ArticleContent)
	assert.NotEmpty(t, recipe.ArticleContent.FAQs)

	missing, err := repo.GetRecipeBySlug(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFixtureRepositoryIsImmutable(t *testing.T) {
	repo := content.NewFixtureRepository()
	ctx := context.Background()

	first, err := repo.GetRecipeBySlug(ctx, "chicken-alfredo")
	require.NoError(t, err)
	first.Title = "changed"

	second, err := repo.GetRecipeBySlug(ctx, "chicken-alfredo")
	require.NoError(t, err)
	assert.Equal(t, "Creamy Chicken Alfredo", second.Title)
}

func TestFixtureRepositorySlugs(t *testing.T) {
	repo := content.NewFixtureRepository()
	ctx := context.Background()

	all, err := repo.GetAllRecipes(ctx)
	require.NoError(t, err)
	slugs, err := repo.GetAllRecipeSlugs(ctx)
	require.NoError(t, err)
	require.Len(t, slugs, len(all))

	seen := map[string]bool{}
	for _, s := range slugs {
		assert.NotEmpty(t, s.Slug)
		assert.False(t, seen[s.Slug], "duplicate slug %s", s.Slug)
		seen[s.Slug] = true
	}
}

func TestFixtureRepositoryTaxonomy(t *testing.T) {
	repo := content.NewFixtureRepository()
	ctx := context.Background()

	categories, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Desserts", categories[0].Title)
	assert.Equal(t, "Main Courses", categories[1].Title)
	assert.Equal(t, 2, categories[1].RecipeCount)
	assert.Equal(t, "Salads", categories[2].Title)

	mains, err := repo.GetRecipesByCategory(ctx, "main-courses")
	require.NoError(t, err)
	require.Len(t, mains, 2)
	assert.Equal(t, "chicken-alfredo", mains[0].Slug.Current)
	assert.Equal(t, "pizza-margherita", mains[1].Slug.Current)

	none, err := repo.GetRecipesByCategory(ctx, "soups")
	require.NoError(t, err)
	assert.Empty(t, none)

	authors, err := repo.GetAllAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Marco Romano", authors[0].Name)
	assert.Equal(t, "Sarah Johnson", authors[1].Name)
	assert.Equal(t, 1, authors[1].RecipeCount)
}

func TestFixtureRepositoryRelated(t *testing.T) {
	repo := content.NewFixtureRepository()

	related, err := repo.GetRelatedRecipes(context.Background(), "chocolate-chip-cookies")
	require.NoError(t, err)
	require.Len(t, related, 3)
	assert.LessOrEqual(t, len(related), content.RelatedLimit)
	for _, r := range related {
		assert.NotEqual(t, "chocolate-chip-cookies", r.Slug.Current)
	}
	assert.Equal(t, "chicken-alfredo", related[0].Slug.Current)
}

func TestFixtureRepositorySiteSettings(t *testing.T) {
	settings, err := content.NewFixtureRepository().GetSiteSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "recipes-by-abdel", settings.SiteID.Current)
	assert.Equal(t, "Recipes By Abdel", settings.SiteName)
	assert.True(t, settings.Published)
	assert.Nil(t, settings.GoogleAnalyticsID)
	require.NotNil(t, settings.Theme)
	assert.Equal(t, "#D54215", settings.Theme.PrimaryColor)
}
