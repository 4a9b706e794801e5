package entities

type Author struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        Slug   `json:"slug"`
	Image       *Image `json:"image,omitempty"`
	Bio         string `json:"bio,omitempty"`
	RecipeCount int    `json:"recipeCount"`
}

// AuthorSummary is the author block embedded in recipe projections.
type AuthorSummary struct {
	Name  string `json:"name"`
	Slug  Slug   `json:"slug"`
	Image *Image `json:"image,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

type Category struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       *Image `json:"image,omitempty"`
	RecipeCount int    `json:"recipeCount"`
}

type CategorySummary struct {
	Title       string `json:"title"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description,omitempty"`
}
