package domain

import (
	"errors"

	"Recipe-Publisher/entities"
)

var (
	MessageFetchingSites        = "Fetching site settings..."
	MessageFetchingTaxonomy     = "Fetching authors and categories..."
	MessageGeneratingContent    = "Generating recipe content with AI..."
	MessageCreatingRecipe       = "Creating recipe document in the content store..."
	MessageSuccessCreateRecipe  = "Recipe created successfully!"
	MessageRecipeCreationCancel = "Recipe creation cancelled."

	ErrPromptCancelled      = errors.New("prompt cancelled")
	ErrNoSites              = errors.New("no site settings found, create at least one published site setting")
	ErrNoAuthors            = errors.New("no authors found for this site, create at least one author")
	ErrNoCategories         = errors.New("no categories found for this site, create at least one category")
	ErrNoCategorySelected   = errors.New("at least one category must be selected")
	ErrGeminiAPIFailed      = errors.New("gemini API processing failed")
	ErrGeminiEmptyResponse  = errors.New("gemini returned no content")
	ErrNoJSONInResponse     = errors.New("could not extract JSON from AI response")
	ErrInvalidJSONResponse  = errors.New("invalid JSON response from AI")
	ErrMissingRequiredField = errors.New("AI response missing required fields")
)

var (
	Cuisines = []string{
		"American", "Italian", "Mexican", "Asian", "Mediterranean",
		"French", "Indian", "Chinese", "Japanese", "Thai", "Greek", "Other",
	}
	Difficulties = []string{"Easy", "Medium", "Hard"}
)

const DefaultServings = 4

type (
	// RecipeGenerationRequest holds the operator's answers collected by the wizard.
	RecipeGenerationRequest struct {
		Title       string              `validate:"required"`
		Site        entities.SiteOption `validate:"-"`
		Cuisine     string              `validate:"required"`
		Difficulty  string              `validate:"required,oneof=Easy Medium Hard"`
		AuthorID    string              `validate:"required"`
		CategoryIDs []string            `validate:"required,min=1"`
	}

	// GeneratedRecipe is the JSON object the model is asked to return. The required
	// tags follow truthiness: an empty string or zero minutes is missing, an empty
	// list is not.
	GeneratedRecipe struct {
		Excerpt            string                     `json:"excerpt" validate:"required"`
		Description        string                     `json:"description" validate:"required"`
		IntroParagraph     string                     `json:"introParagraph"`
		WhyLoveThis        []string                   `json:"whyLoveThis"`
		SecondParagraph    string                     `json:"secondParagraph"`
		IngredientsList    []entities.IngredientItem  `json:"ingredientsList" validate:"required"`
		InstructionsList   []entities.InstructionStep `json:"instructionsList" validate:"required"`
		FirstImageAlt      string                     `json:"firstImageAlt"`
		FirstImageCaption  string                     `json:"firstImageCaption"`
		MustKnow           []string                   `json:"mustKnow"`
		ThirdParagraph     string                     `json:"thirdParagraph"`
		StorageTips        string                     `json:"storageTips"`
		SubstitutionTips   string                     `json:"substitutionTips"`
		ServingSuggestions string                     `json:"servingSuggestions"`
		CulturalContext    string                     `json:"culturalContext"`
		SecondImageAlt     string                     `json:"secondImageAlt"`
		SecondImageCaption string                     `json:"secondImageCaption"`
		ProTips            []string                   `json:"proTips"`
		FourthParagraph    string                     `json:"fourthParagraph"`
		FAQs               []entities.FAQ             `json:"faqs"`
		PrepTime           entities.FlexInt           `json:"prepTime" validate:"required"`
		CookTime           entities.FlexInt           `json:"cookTime" validate:"required"`
		Servings           entities.FlexInt           `json:"servings"`
		Difficulty         string                     `json:"difficulty"`
		Cuisine            string                     `json:"cuisine"`
		Yield              string                     `json:"yield"`
		Dietary            []string                   `json:"dietary"`
		Equipment          []string                   `json:"equipment"`
		Nutrition          *entities.Nutrition        `json:"nutrition"`
		AllergyInfo        []string                   `json:"allergyInfo"`
		Ingredients        []string                   `json:"ingredients"`
		Instructions       []string                   `json:"instructions"`
		Notes              []string                   `json:"notes"`
	}

	RecipeCreatedResponse struct {
		ID    string
		Title string
		Slug  string
	}
)

// ApplyDefaults fills the optional fields the model may omit.
func (g *GeneratedRecipe) ApplyDefaults() {
	for _, list := range []*[]string{
		&g.WhyLoveThis, &g.MustKnow, &g.ProTips, &g.Dietary, &g.Equipment,
		&g.AllergyInfo, &g.Ingredients, &g.Instructions, &g.Notes,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	if g.FAQs == nil {
		g.FAQs = []entities.FAQ{}
	}
	if g.Nutrition == nil {
		g.Nutrition = &entities.Nutrition{}
	}
	if g.Servings == 0 {
		g.Servings = DefaultServings
	}
}
