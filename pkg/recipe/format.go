package recipe

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// CreateSlug derives a URL-safe slug from a title: accents folded to their base
// letter, lowercase ASCII letters and digits kept, "&" spelled out, whitespace,
// hyphens and underscores collapsed to single hyphens, everything else dropped.
func CreateSlug(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	folded = lower.String(strings.ReplaceAll(folded, "&", " and "))

	var sb strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingSep = false
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return sb.String()
}

// FormatCookingTime renders minutes as "1 Hour 10 Minutes", "2 Hours" or "45 Minutes".
func FormatCookingTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours, mins := minutes/60, minutes%60

	hourLabel := "Hour"
	if hours > 1 {
		hourLabel = "Hours"
	}

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%d %s %d Minutes", hours, hourLabel, mins)
	case hours > 0:
		return fmt.Sprintf("%d %s", hours, hourLabel)
	default:
		return fmt.Sprintf("%d Minutes", mins)
	}
}
