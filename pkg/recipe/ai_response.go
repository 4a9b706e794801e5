package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"Recipe-Publisher/domain"
	"Recipe-Publisher/internal/utils"

	"github.com/go-playground/validator/v10"
)

const responsePreviewLen = 500

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// AIResponseError keeps the raw model output next to the parse failure so the
// operator can see what came back.
type AIResponseError struct {
	Err      error
	Response string
}

func (e *AIResponseError) Error() string {
	return e.Err.Error()
}

func (e *AIResponseError) Unwrap() error {
	return e.Err
}

// Preview returns at most the first 500 characters of the raw response.
func (e *AIResponseError) Preview() string {
	r := []rune(e.Response)
	if len(r) <= responsePreviewLen {
		return e.Response
	}
	return string(r[:responsePreviewLen]) + "..."
}

// ExtractJSON returns the JSON object embedded in a model response: the body of a
// ```json fenced block when present, otherwise everything from the first "{" to
// the last "}".
func ExtractJSON(text string) (string, bool) {
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := bareObjectPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// ParseGeneratedRecipe extracts, decodes and validates the model's recipe object and
// fills optional fields with their defaults.
func ParseGeneratedRecipe(text string) (domain.GeneratedRecipe, error) {
	var content domain.GeneratedRecipe

	raw, ok := ExtractJSON(text)
	if !ok {
		return content, &AIResponseError{Err: domain.ErrNoJSONInResponse, Response: text}
	}
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return content, &AIResponseError{Err: fmt.Errorf("%w: %v", domain.ErrInvalidJSONResponse, err), Response: text}
	}

	utils.InitValidator()
	if err := utils.Validate.Struct(content); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return content, &AIResponseError{
				Err:      fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, strings.Join(missing, ", ")),
				Response: text,
			}
		}
		return content, err
	}

	content.ApplyDefaults()
	return content, nil
}
