package recipe_test

import (
	"errors"
	"strings"
	"testing"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecipeJSON = `{
  "excerpt": "A bright weeknight soup.",
  "description": "Lemony chicken orzo soup in 40 minutes.",
  "ingredientsList": [{"ingredientTitle": "Orzo", "ingredientDetail": "1 cup"}],
  "instructionsList": [{"stepTitle": "Simmer", "stepDetail": "Simmer 10 minutes"}],
  "prepTime": 10,
  "cookTime": "30 minutes",
  "difficulty": "Easy",
  "cuisine": "Greek"
}`

func TestExtractJSON(t *testing.T) {
	fenced := "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy {not json}"
	raw, ok := recipe.ExtractJSON(fenced)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, raw)

	bare := `Sure! {"a": {"b": 2}} hope that helps`
	raw, ok = recipe.ExtractJSON(bare)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 2}}`, raw)

	_, ok = recipe.ExtractJSON("no json here")
	assert.False(t, ok)
}

func TestParseGeneratedRecipeAppliesDefaults(t *testing.T) {
	content, err := recipe.ParseGeneratedRecipe("```json\n" + validRecipeJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, entities.FlexInt(10), content.PrepTime)
	assert.Equal(t, entities.FlexInt(30), content.CookTime)
	assert.Equal(t, entities.FlexInt(domain.DefaultServings), content.Servings)
	assert.NotNil(t, content.WhyLoveThis)
	assert.Empty(t, content.WhyLoveThis)
	assert.NotNil(t, content.FAQs)
	require.NotNil(t, content.Nutrition)
	assert.Zero(t, content.Nutrition.Calories)
}

func TestParseGeneratedRecipeMissingPrepTime(t *testing.T) {
	text := strings.Replace(validRecipeJSON, `"prepTime": 10,`, "", 1)

	_, err := recipe.ParseGeneratedRecipe(text)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "prepTime")
}

func TestParseGeneratedRecipeEmptyListIsPresent(t *testing.T) {
	text := strings.Replace(validRecipeJSON,
		`"ingredientsList": [{"ingredientTitle": "Orzo", "ingredientDetail": "1 cup"}]`,
		`"ingredientsList": []`, 1)

	_, err := recipe.ParseGeneratedRecipe(text)
	assert.NoError(t, err)
}

func TestParseGeneratedRecipeBadJSONKeepsPreview(t *testing.T) {
	text := "{ this is not json " + strings.Repeat("x", 600) + " }"

	_, err := recipe.ParseGeneratedRecipe(text)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJSONResponse)

	var aiErr *recipe.AIResponseError
	require.True(t, errors.As(err, &aiErr))
	assert.Len(t, []rune(aiErr.Preview()), 503)
}

func TestParseGeneratedRecipeLenientNutrition(t *testing.T) {
	text := strings.Replace(validRecipeJSON, `"cuisine": "Greek"`,
		`"cuisine": "Greek", "nutrition": {"calories": "350 kcal", "protein": "22g", "carbs": 41.5, "fat": "unknown"}`, 1)

	content, err := recipe.ParseGeneratedRecipe(text)
	require.NoError(t, err)
	require.NotNil(t, content.Nutrition)
	assert.Equal(t, entities.FlexFloat(350), content.Nutrition.Calories)
	assert.Equal(t, entities.FlexFloat(22), content.Nutrition.Protein)
	assert.Equal(t, entities.FlexFloat(41.5), content.Nutrition.Carbs)
	assert.Zero(t, content.Nutrition.Fat)
}
