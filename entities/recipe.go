package entities

import (
	"time"
)

type Recipe struct {
	ID             string            `json:"_id"`
	Title          string            `json:"title"`
	Slug           Slug              `json:"slug"`
	Excerpt        string            `json:"excerpt,omitempty"`
	Description    string            `json:"description,omitempty"`
	MainImage      *Image            `json:"mainImage,omitempty"`
	PrepTime       FlexInt           `json:"prepTime"`
	CookTime       FlexInt           `json:"cookTime"`
	TotalTime      string            `json:"totalTime,omitempty"`
	Servings       FlexInt           `json:"servings"`
	Difficulty     string            `json:"difficulty"`
	Cuisine        string            `json:"cuisine,omitempty"`
	Yield          string            `json:"yield,omitempty"`
	Dietary        []string          `json:"dietary,omitempty"`
	Equipment      []string          `json:"equipment,omitempty"`
	AllergyInfo    []string          `json:"allergyInfo,omitempty"`
	Ingredients    []string          `json:"ingredients,omitempty"`
	Instructions   []string          `json:"instructions,omitempty"`
	Tips           []string          `json:"tips,omitempty"`
	Notes          []string          `json:"notes,omitempty"`
	Nutrition      *Nutrition        `json:"nutrition,omitempty"`
	ArticleContent *ArticleContent   `json:"articleContent,omitempty"`
	Author         *AuthorSummary    `json:"author,omitempty"`
	Categories     []CategorySummary `json:"categories"`
	PublishedAt    time.Time         `json:"publishedAt"`
	UpdatedAt      time.Time         `json:"_updatedAt"`
}

// RecipeCard is the list projection used by listing pages.
type RecipeCard struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title"`
	Slug        Slug              `json:"slug"`
	Excerpt     string            `json:"excerpt,omitempty"`
	MainImage   *Image            `json:"mainImage,omitempty"`
	PrepTime    FlexInt           `json:"prepTime"`
	CookTime    FlexInt           `json:"cookTime"`
	Servings    FlexInt           `json:"servings"`
	Difficulty  string            `json:"difficulty"`
	PublishedAt time.Time         `json:"publishedAt"`
	UpdatedAt   time.Time         `json:"_updatedAt"`
	Author      *AuthorSummary    `json:"author,omitempty"`
	Categories  []CategorySummary `json:"categories"`
}

// RelatedRecipe only carries what a "you may also like" strip renders.
type RelatedRecipe struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Slug      Slug   `json:"slug"`
	Excerpt   string `json:"excerpt,omitempty"`
	MainImage *Image `json:"mainImage,omitempty"`
}

type RecipeSlug struct {
	Slug string `json:"slug"`
}

type Nutrition struct {
	Calories     FlexFloat `json:"calories"`
	Protein      FlexFloat `json:"protein"`
	Carbs        FlexFloat `json:"carbs"`
	Fat          FlexFloat `json:"fat"`
	Fiber        FlexFloat `json:"fiber,omitempty"`
	Sugar        FlexFloat `json:"sugar,omitempty"`
	Sodium       FlexFloat `json:"sodium,omitempty"`
	Cholesterol  FlexFloat `json:"cholesterol,omitempty"`
	SaturatedFat FlexFloat `json:"saturatedFat,omitempty"`
	TransFat     FlexFloat `json:"transFat,omitempty"`
}

type ArticleContent struct {
	IntroParagraph     string            `json:"introParagraph,omitempty"`
	WhyLoveThis        []string          `json:"whyLoveThis,omitempty"`
	SecondParagraph    string            `json:"secondParagraph,omitempty"`
	IngredientsList    []IngredientItem  `json:"ingredientsList,omitempty"`
	InstructionsList   []InstructionStep `json:"instructionsList,omitempty"`
	FirstImage         *Image            `json:"firstImage,omitempty"`
	FirstImageAlt      string            `json:"firstImageAlt,omitempty"`
	FirstImageCaption  string            `json:"firstImageCaption,omitempty"`
	MustKnow           []string          `json:"mustKnow,omitempty"`
	ThirdParagraph     string            `json:"thirdParagraph,omitempty"`
	StorageTips        string            `json:"storageTips,omitempty"`
	SubstitutionTips   string            `json:"substitutionTips,omitempty"`
	ServingSuggestions string            `json:"servingSuggestions,omitempty"`
	CulturalContext    string            `json:"culturalContext,omitempty"`
	SecondImage        *Image            `json:"secondImage,omitempty"`
	SecondImageAlt     string            `json:"secondImageAlt,omitempty"`
	SecondImageCaption string            `json:"secondImageCaption,omitempty"`
	ProTips            []string          `json:"proTips,omitempty"`
	FourthParagraph    string            `json:"fourthParagraph,omitempty"`
	FAQs               []FAQ             `json:"faqs,omitempty"`
}

type IngredientItem struct {
	Key              string `json:"_key,omitempty"`
	IngredientTitle  string `json:"ingredientTitle"`
	IngredientDetail string `json:"ingredientDetail"`
}

type InstructionStep struct {
	Key        string `json:"_key,omitempty"`
	StepTitle  string `json:"stepTitle"`
	StepDetail string `json:"stepDetail"`
}

type FAQ struct {
	Key      string `json:"_key,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RecipeDocument is the payload written to the store when a recipe is created.
type RecipeDocument struct {
	Type           string         `json:"_type"`
	Title          string         `json:"title"`
	Slug           Slug           `json:"slug"`
	SiteID         Reference      `json:"siteId"`
	Author         Reference      `json:"author"`
	Categories     []Reference    `json:"categories"`
	Excerpt        string         `json:"excerpt"`
	Description    string         `json:"description"`
	PrepTime       int            `json:"prepTime"`
	CookTime       int            `json:"cookTime"`
	TotalTime      string         `json:"totalTime"`
	Servings       int            `json:"servings"`
	Difficulty     string         `json:"difficulty"`
	Cuisine        string         `json:"cuisine"`
	Yield          string         `json:"yield,omitempty"`
	Dietary        []string       `json:"dietary"`
	Equipment      []string       `json:"equipment"`
	Nutrition      Nutrition      `json:"nutrition"`
	AllergyInfo    []string       `json:"allergyInfo"`
	Ingredients    []string       `json:"ingredients"`
	Instructions   []string       `json:"instructions"`
	Notes          []string       `json:"notes"`
	ArticleContent ArticleContent `json:"articleContent"`
	PublishedAt    time.Time      `json:"publishedAt"`
}
