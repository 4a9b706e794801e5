package recipe

import (
	"context"
	"fmt"
	"time"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/gemini"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const recipePromptTemplate = `You are a food writer and recipe developer. Write a complete recipe for "%[1]s".
Cuisine: %[2]s. Difficulty: %[3]s.

Respond with a single JSON object and nothing else, using exactly these fields:
{
  "excerpt": "2-3 sentence teaser",
  "description": "1-2 sentence SEO description",
  "introParagraph": "opening paragraph",
  "whyLoveThis": ["reason", "reason", "reason", "reason"],
  "secondParagraph": "background or story",
  "ingredientsList": [{"ingredientTitle": "ingredient", "ingredientDetail": "amount and notes"}],
  "instructionsList": [{"stepTitle": "short step name", "stepDetail": "what to do"}],
  "firstImageAlt": "alt text for the hero photo",
  "firstImageCaption": "caption for the hero photo",
  "mustKnow": ["tip", "tip", "tip"],
  "thirdParagraph": "variations and adaptations",
  "storageTips": "how to store leftovers",
  "substitutionTips": "ingredient swaps",
  "servingSuggestions": "what to serve it with",
  "culturalContext": "short origin or history",
  "secondImageAlt": "alt text for the second photo",
  "secondImageCaption": "caption for the second photo",
  "proTips": ["tip", "tip", "tip"],
  "fourthParagraph": "closing paragraph",
  "faqs": [{"question": "question", "answer": "answer"}],
  "prepTime": <minutes as a number>,
  "cookTime": <minutes as a number>,
  "servings": <number of servings>,
  "difficulty": "%[3]s",
  "cuisine": "%[2]s",
  "yield": "what the recipe makes",
  "dietary": ["dietary label"],
  "equipment": ["tool"],
  "nutrition": {"calories": <number>, "protein": <number>, "carbs": <number>, "fat": <number>},
  "allergyInfo": ["allergen warning"],
  "ingredients": ["plain ingredient line"],
  "instructions": ["plain instruction step"],
  "notes": ["extra note"]
}

Keep times and nutrition realistic.`

type (
	// Notifier tells an editor about a newly created recipe.
	Notifier interface {
		Notify(subject, body string) error
	}

	RecipeService interface {
		GetPublishedSites(ctx context.Context) ([]entities.SiteOption, error)
		GetAuthors(ctx context.Context, siteID string) ([]entities.Author, error)
		GetCategories(ctx context.Context, siteID string) ([]entities.Category, error)
		GenerateContent(ctx context.Context, req domain.RecipeGenerationRequest) (domain.GeneratedRecipe, error)
		BuildDocument(req domain.RecipeGenerationRequest, content domain.GeneratedRecipe, publishedAt time.Time) entities.RecipeDocument
		CreateRecipe(ctx context.Context, req domain.RecipeGenerationRequest, doc entities.RecipeDocument) (domain.RecipeCreatedResponse, error)
		RecordCancelled(ctx context.Context, req domain.RecipeGenerationRequest)
	}

	recipeService struct {
		recipeRepository        RecipeRepository
		geminiClient            gemini.GeminiClient
		generationLogRepository GenerationLogRepository
		notifier                Notifier
	}
)

// NewRecipeService wires the authoring flow. generationLogRepository and notifier
// are optional and may be nil.
func NewRecipeService(
	recipeRepository RecipeRepository,
	geminiClient gemini.GeminiClient,
	generationLogRepository GenerationLogRepository,
	notifier Notifier,
) RecipeService {
	return &recipeService{
		recipeRepository:        recipeRepository,
		geminiClient:            geminiClient,
		generationLogRepository: generationLogRepository,
		notifier:                notifier,
	}
}

func BuildPrompt(title, cuisine, difficulty string) string {
	return fmt.Sprintf(recipePromptTemplate, title, cuisine, difficulty)
}

func (s *recipeService) GetPublishedSites(ctx context.Context) ([]entities.SiteOption, error) {
	return s.recipeRepository.GetPublishedSites(ctx)
}

func (s *recipeService) GetAuthors(ctx context.Context, siteID string) ([]entities.Author, error) {
	return s.recipeRepository.GetAuthors(ctx, siteID)
}

func (s *recipeService) GetCategories(ctx context.Context, siteID string) ([]entities.Category, error) {
	return s.recipeRepository.GetCategories(ctx, siteID)
}

func (s *recipeService) GenerateContent(ctx context.Context, req domain.RecipeGenerationRequest) (domain.GeneratedRecipe, error) {
	text, err := s.geminiClient.GenerateContent(ctx, BuildPrompt(req.Title, req.Cuisine, req.Difficulty))
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}
	return ParseGeneratedRecipe(text)
}

func (s *recipeService) BuildDocument(req domain.RecipeGenerationRequest, content domain.GeneratedRecipe, publishedAt time.Time) entities.RecipeDocument {
	categories := make([]entities.Reference, 0, len(req.CategoryIDs))
	for _, id := range req.CategoryIDs {
		ref := entities.NewReference(id)
		ref.Key = uuid.NewString()
		categories = append(categories, ref)
	}

	ingredients := make([]entities.IngredientItem, 0, len(content.IngredientsList))
	for _, item := range content.IngredientsList {
		item.Key = uuid.NewString()
		ingredients = append(ingredients, item)
	}
	steps := make([]entities.InstructionStep, 0, len(content.InstructionsList))
	for _, step := range content.InstructionsList {
		step.Key = uuid.NewString()
		steps = append(steps, step)
	}
	faqs := make([]entities.FAQ, 0, len(content.FAQs))
	for _, faq := range content.FAQs {
		faq.Key = uuid.NewString()
		faqs = append(faqs, faq)
	}

	difficulty := content.Difficulty
	if difficulty == "" {
		difficulty = req.Difficulty
	}
	cuisine := content.Cuisine
	if cuisine == "" {
		cuisine = req.Cuisine
	}

	var nutrition entities.Nutrition
	if content.Nutrition != nil {
		nutrition = *content.Nutrition
	}

	prep, cook := int(content.PrepTime), int(content.CookTime)

	return entities.RecipeDocument{
		Type:         "recipe",
		Title:        req.Title,
		Slug:         entities.Slug{Current: CreateSlug(req.Title)},
		SiteID:       entities.NewReference(req.Site.ID),
		Author:       entities.NewReference(req.AuthorID),
		Categories:   categories,
		Excerpt:      content.Excerpt,
		Description:  content.Description,
		PrepTime:     prep,
		CookTime:     cook,
		TotalTime:    FormatCookingTime(prep + cook),
		Servings:     int(content.Servings),
		Difficulty:   difficulty,
		Cuisine:      cuisine,
		Yield:        content.Yield,
		Dietary:      content.Dietary,
		Equipment:    content.Equipment,
		Nutrition:    nutrition,
		AllergyInfo:  content.AllergyInfo,
		Ingredients:  content.Ingredients,
		Instructions: content.Instructions,
		Notes:        content.Notes,
		ArticleContent: entities.ArticleContent{
			IntroParagraph:     content.IntroParagraph,
			WhyLoveThis:        content.WhyLoveThis,
			SecondParagraph:    content.SecondParagraph,
			IngredientsList:    ingredients,
			InstructionsList:   steps,
			FirstImageAlt:      content.FirstImageAlt,
			FirstImageCaption:  content.FirstImageCaption,
			MustKnow:           content.MustKnow,
			ThirdParagraph:     content.ThirdParagraph,
			StorageTips:        content.StorageTips,
			SubstitutionTips:   content.SubstitutionTips,
			ServingSuggestions: content.ServingSuggestions,
			CulturalContext:    content.CulturalContext,
			SecondImageAlt:     content.SecondImageAlt,
			SecondImageCaption: content.SecondImageCaption,
			ProTips:            content.ProTips,
			FourthParagraph:    content.FourthParagraph,
			FAQs:               faqs,
		},
		PublishedAt: publishedAt.UTC(),
	}
}

// CreateRecipe writes doc to the store. The generation log and editor notification
// that follow are best effort and never change the outcome.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeGenerationRequest, doc entities.RecipeDocument) (domain.RecipeCreatedResponse, error) {
	created, err := s.recipeRepository.CreateRecipe(ctx, doc)
	if err != nil {
		s.record(ctx, req, doc.Slug.Current, "", entities.GenerationStatusFailed, err)
		return domain.RecipeCreatedResponse{}, err
	}

	s.record(ctx, req, created.Slug, created.ID, entities.GenerationStatusCreated, nil)
	s.notify(created, req)
	return created, nil
}

func (s *recipeService) RecordCancelled(ctx context.Context, req domain.RecipeGenerationRequest) {
	s.record(ctx, req, CreateSlug(req.Title), "", entities.GenerationStatusCancelled, nil)
}

func (s *recipeService) record(ctx context.Context, req domain.RecipeGenerationRequest, slug, documentID, status string, cause error) {
	if s.generationLogRepository == nil {
		return
	}

	entry := &entities.GenerationLog{
		ID:         uuid.New(),
		Title:      req.Title,
		Slug:       slug,
		SiteID:     req.Site.Key(),
		DocumentID: documentID,
		Model:      s.geminiClient.Model(),
		Cuisine:    req.Cuisine,
		Difficulty: req.Difficulty,
		Status:     status,
	}
	if cause != nil {
		entry.ErrorDetail = cause.Error()
	}

	if err := s.generationLogRepository.CreateLog(ctx, entry); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("failed to record generation log")
	}
}

func (s *recipeService) notify(created domain.RecipeCreatedResponse, req domain.RecipeGenerationRequest) {
	if s.notifier == nil {
		return
	}

	subject := fmt.Sprintf("New recipe draft: %s", created.Title)
	body := fmt.Sprintf(
		"<p>A new recipe was generated for <b>%s</b>.</p><p>Title: %s<br>Slug: %s<br>Document: %s<br>Cuisine: %s<br>Difficulty: %s</p><p>Remember to add photos before publishing.</p>",
		req.Site.SiteName, created.Title, created.Slug, created.ID, req.Cuisine, req.Difficulty,
	)
	if err := s.notifier.Notify(subject, body); err != nil {
		log.Warn().Err(err).Str("slug", created.Slug).Msg("failed to notify editor")
	}
}
