package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
	"Recipe-Publisher/internal/utils"
	"Recipe-Publisher/internal/utils/prompt"

	"github.com/rs/zerolog/log"
)

const doneOption = "Done selecting categories"

type (
	// Credentials are the settings the wizard needs before it may talk to anything.
	Credentials struct {
		SanityProjectID string
		SanityToken     string
		GeminiAPIKey    string
	}

	Wizard struct {
		prompter prompt.Prompter
		service  RecipeService
		creds    Credentials
		now      func() time.Time
	}
)

func NewWizard(prompter prompt.Prompter, service RecipeService, creds Credentials) *Wizard {
	return &Wizard{
		prompter: prompter,
		service:  service,
		creds:    creds,
		now:      time.Now,
	}
}

// CheckCredentials reports every missing credential with how to obtain it.
func CheckCredentials(p prompt.Prompter, creds Credentials) error {
	var missing []string

	if creds.SanityProjectID == "" {
		missing = append(missing, "SANITY_PROJECT_ID")
		p.Printf("Missing SANITY_PROJECT_ID.\n  Find it in your project settings at https://www.sanity.io/manage and add it to .env or config.yaml.\n")
	}
	if creds.SanityToken == "" {
		missing = append(missing, "SANITY_TOKEN")
		p.Printf("Missing SANITY_TOKEN.\n  Create an API token with Editor permissions under API > Tokens at https://www.sanity.io/manage and add it to .env.\n")
	}
	if creds.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
		p.Printf("Missing GEMINI_API_KEY.\n  Create a key at https://aistudio.google.com/app/apikey and add it to .env.\n")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// Run walks the operator through creating one recipe. It returns
// domain.ErrPromptCancelled when the operator backs out, in which case nothing was
// written.
func (w *Wizard) Run(ctx context.Context) (domain.RecipeCreatedResponse, error) {
	if err := CheckCredentials(w.prompter, w.creds); err != nil {
		return domain.RecipeCreatedResponse{}, err
	}

	w.prompter.Printf("%s\n", domain.MessageFetchingSites)
	sites, err := w.service.GetPublishedSites(ctx)
	if err != nil {
		return domain.RecipeCreatedResponse{}, err
	}
	if len(sites) == 0 {
		return domain.RecipeCreatedResponse{}, domain.ErrNoSites
	}

	req, err := w.askBasics(sites)
	if err != nil {
		return domain.RecipeCreatedResponse{}, err
	}

	w.prompter.Printf("%s\n", domain.MessageFetchingTaxonomy)
	authors, err := w.service.GetAuthors(ctx, req.Site.Key())
	if err != nil {
		return domain.RecipeCreatedResponse{}, err
	}
	if len(authors) == 0 {
		return domain.RecipeCreatedResponse{}, domain.ErrNoAuthors
	}
	categories, err := w.service.GetCategories(ctx, req.Site.Key())
	if err != nil {
		return domain.RecipeCreatedResponse{}, err
	}
	if len(categories) == 0 {
		return domain.RecipeCreatedResponse{}, domain.ErrNoCategories
	}

	if req.AuthorID, err = w.askAuthor(authors); err != nil {
		return domain.RecipeCreatedResponse{}, err
	}
	if req.CategoryIDs, err = w.askCategories(categories); err != nil {
		return domain.RecipeCreatedResponse{}, err
	}

	utils.InitValidator()
	if err := utils.Validate.Struct(req); err != nil {
		return domain.RecipeCreatedResponse{}, err
	}

	w.prompter.Printf("%s\n", domain.MessageGeneratingContent)
	content, err := w.service.GenerateContent(ctx, req)
	if err != nil {
		var aiErr *AIResponseError
		if errors.As(err, &aiErr) {
			w.prompter.Printf("Raw AI response:\n%s\n", aiErr.Preview())
		}
		return domain.RecipeCreatedResponse{}, err
	}

	doc := w.service.BuildDocument(req, content, w.now())
	w.printPreview(doc)

	ok, err := w.prompter.Confirm("Create this recipe?", true)
	if err != nil {
		w.service.RecordCancelled(ctx, req)
		return domain.RecipeCreatedResponse{}, err
	}
	if !ok {
		w.service.RecordCancelled(ctx, req)
		return domain.RecipeCreatedResponse{}, domain.ErrPromptCancelled
	}

	w.prompter.Printf("%s\n", domain.MessageCreatingRecipe)
	created, err := w.service.CreateRecipe(ctx, req, doc)
	if err != nil {
		w.printWriteGuidance(err)
		return domain.RecipeCreatedResponse{}, err
	}

	w.prompter.Printf("\n%s\n  ID: %s\n  Title: %s\n  Slug: %s\n", domain.MessageSuccessCreateRecipe, created.ID, created.Title, created.Slug)
	w.prompter.Printf("\nNext steps:\n  1. Add a main image and article images in the studio\n  2. Review the generated content\n  3. Publish the document\n")
	log.Info().Str("id", created.ID).Str("slug", created.Slug).Msg("Recipe created")
	return created, nil
}

func (w *Wizard) askBasics(sites []entities.SiteOption) (domain.RecipeGenerationRequest, error) {
	var req domain.RecipeGenerationRequest

	title, err := w.prompter.Input("Recipe title:", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("title is required")
		}
		if CreateSlug(s) == "" {
			return errors.New("title needs at least one letter or digit (a-z, 0-9) to build the URL slug")
		}
		return nil
	})
	if err != nil {
		return req, err
	}
	req.Title = strings.TrimSpace(title)

	labels := make([]string, len(sites))
	for i, site := range sites {
		id := "No ID"
		if site.SiteID != nil && site.SiteID.Current != "" {
			id = site.SiteID.Current
		}
		labels[i] = fmt.Sprintf("%s (%s)", site.SiteName, id)
	}
	idx, err := w.prompter.Select("Site:", labels)
	if err != nil {
		return req, err
	}
	req.Site = sites[idx]

	if idx, err = w.prompter.Select("Cuisine:", domain.Cuisines); err != nil {
		return req, err
	}
	req.Cuisine = domain.Cuisines[idx]

	if idx, err = w.prompter.Select("Difficulty:", domain.Difficulties); err != nil {
		return req, err
	}
	req.Difficulty = domain.Difficulties[idx]

	return req, nil
}

func (w *Wizard) askAuthor(authors []entities.Author) (string, error) {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Name
	}
	idx, err := w.prompter.Select("Author:", names)
	if err != nil {
		return "", err
	}
	return authors[idx].ID, nil
}

func (w *Wizard) askCategories(categories []entities.Category) ([]string, error) {
	remaining := append([]entities.Category(nil), categories...)
	var selected []string

	for len(remaining) > 0 {
		options := make([]string, 0, len(remaining)+1)
		for _, c := range remaining {
			options = append(options, c.Title)
		}
		if len(selected) > 0 {
			options = append(options, doneOption)
		}

		idx, err := w.prompter.Select("Category:", options)
		if err != nil {
			return nil, err
		}
		if idx >= len(remaining) {
			break
		}

		selected = append(selected, remaining[idx].ID)
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		if len(selected) == 1 && len(remaining) > 0 {
			more, err := w.prompter.Confirm("Add more categories?", false)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
	}

	if len(selected) == 0 {
		return nil, domain.ErrNoCategorySelected
	}
	return selected, nil
}

func (w *Wizard) printPreview(doc entities.RecipeDocument) {
	w.prompter.Printf("\nRecipe preview\n")
	w.prompter.Printf("  Title:      %s\n", doc.Title)
	w.prompter.Printf("  Slug:       %s\n", doc.Slug.Current)
	w.prompter.Printf("  Cuisine:    %s\n", doc.Cuisine)
	w.prompter.Printf("  Difficulty: %s\n", doc.Difficulty)
	w.prompter.Printf("  Prep time:  %d minutes\n", doc.PrepTime)
	w.prompter.Printf("  Cook time:  %d minutes\n", doc.CookTime)
	w.prompter.Printf("  Servings:   %d\n", doc.Servings)
	w.prompter.Printf("  Excerpt:    %s\n\n", doc.Excerpt)
}

func (w *Wizard) printWriteGuidance(err error) {
	switch {
	case errors.Is(err, domain.ErrStorePermission):
		w.prompter.Printf("The token cannot write documents.\n  Create a token with Editor (write) permissions and update SANITY_TOKEN.\n")
	case errors.Is(err, domain.ErrStoreUnauthorized):
		w.prompter.Printf("The token was rejected.\n  Check that SANITY_TOKEN is correct and has not been revoked.\n")
	case errors.Is(err, domain.ErrStoreNotFound):
		w.prompter.Printf("The project or dataset was not found.\n  Check SANITY_PROJECT_ID and SANITY_DATASET.\n")
	}
}
