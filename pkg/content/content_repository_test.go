package content_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/content"
	"Recipe-Publisher/pkg/sanity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeStub answers GROQ queries with canned results chosen by a substring of the query.
type storeStub struct {
	t         *testing.T
	responses map[string]string
	lastQuery string
	siteParam string
}

func (s *storeStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.lastQuery = r.URL.Query().Get("query")
	s.siteParam = r.URL.Query().Get("$siteId")
	for marker, body := range s.responses {
		if strings.Contains(s.lastQuery, marker) {
			_, _ = io.WriteString(w, body)
			return
		}
	}
	_, _ = io.WriteString(w, `{"result":null}`)
}

func newRemoteRepository(t *testing.T, siteID string, responses map[string]string) (content.ContentRepository, *storeStub) {
	t.Helper()
	stub := &storeStub{t: t, responses: responses}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	client := sanity.NewClient(sanity.Config{
		ProjectID:  "proj",
		Dataset:    "production",
		APIVersion: "2023-11-01",
		BaseURL:    srv.URL,
	}, srv.Client())
	return content.NewContentRepository(client, siteID), stub
}

func TestRemoteRepositoryScopesBySite(t *testing.T) {
	repo, stub := newRemoteRepository(t, "site-a", map[string]string{
		"order(publishedAt desc)": `{"result":[{"_id":"r1","title":"Soup","slug":{"current":"soup"},"prepTime":5,"cookTime":10,"servings":2,"difficulty":"Easy","publishedAt":"2024-02-01T00:00:00Z","_updatedAt":"2024-02-02T00:00:00Z","author":{"name":"Ann","slug":{"current":"ann"}},"categories":[{"title":"Soups","slug":{"current":"soups"}}]}]}`,
	})

	recipes, err := repo.GetAllRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "soup", recipes[0].Slug.Current)
	assert.Equal(t, "Ann", recipes[0].Author.Name)
	assert.Equal(t, `"site-a"`, stub.siteParam)
	assert.Contains(t, stub.lastQuery, "siteId->siteId.current == $siteId")
}

func TestRemoteRepositoryToleratesDecimalNumbers(t *testing.T) {
	repo, _ := newRemoteRepository(t, "", map[string]string{
		"order(publishedAt desc)": `{"result":[
			{"_id":"r1","title":"Soup","slug":{"current":"soup"},"prepTime":7.5,"cookTime":"20 minutes","servings":2,"publishedAt":"2024-02-01T00:00:00Z","_updatedAt":"2024-02-01T00:00:00Z","categories":[]},
			{"_id":"r2","title":"Stew","slug":{"current":"stew"},"prepTime":10,"cookTime":60,"servings":4.0,"publishedAt":"2024-01-01T00:00:00Z","_updatedAt":"2024-01-01T00:00:00Z","categories":[]}
		]}`,
	})

	recipes, err := repo.GetAllRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, entities.FlexInt(8), recipes[0].PrepTime)
	assert.Equal(t, entities.FlexInt(20), recipes[0].CookTime)
	assert.Equal(t, entities.FlexInt(4), recipes[1].Servings)
}

func TestRemoteRepositoryEmptySiteStillSendsParam(t *testing.T) {
	repo, stub := newRemoteRepository(t, "", nil)

	_, err := repo.GetAllAuthors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `""`, stub.siteParam)
	assert.Contains(t, stub.lastQuery, "order(name asc)")
}

func TestRemoteRepositoryUnknownSlugIsNil(t *testing.T) {
	repo, _ := newRemoteRepository(t, "", nil)

	recipe, err := repo.GetRecipeBySlug(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, recipe)

	settings, err := repo.GetSiteSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestRemoteRepositoryQueriesCarryLimits(t *testing.T) {
	repo, stub := newRemoteRepository(t, "", nil)
	ctx := context.Background()

	_, err := repo.GetFeaturedRecipes(ctx)
	require.NoError(t, err)
	assert.Contains(t, stub.lastQuery, "[0...8]")

	_, err = repo.GetRelatedRecipes(ctx, "soup")
	require.NoError(t, err)
	assert.Contains(t, stub.lastQuery, "[0...6]")
	assert.Contains(t, stub.lastQuery, "slug.current != $currentSlug")
	assert.Contains(t, stub.lastQuery, "order(_updatedAt desc)")

	_, err = repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Contains(t, stub.lastQuery, "order(title asc)")
	assert.Contains(t, stub.lastQuery, `"recipeCount": count(`)
}

func TestRemoteRepositoryPropagatesStoreErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Unauthorized"}`)
	}))
	t.Cleanup(srv.Close)
	client := sanity.NewClient(sanity.Config{ProjectID: "proj", Dataset: "production", APIVersion: "2023-11-01", BaseURL: srv.URL}, srv.Client())

	_, err := content.NewContentRepository(client, "").GetAllRecipes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnauthorized)
}

func TestContentServiceMapsMissingDocuments(t *testing.T) {
	repo, _ := newRemoteRepository(t, "", nil)
	svc := content.NewContentService(repo)
	ctx := context.Background()

	_, err := svc.GetRecipeBySlug(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = svc.GetSiteSettings(ctx)
	assert.ErrorIs(t, err, domain.ErrSiteSettingsNotFound)

	recipes, err := svc.GetAllRecipes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}
