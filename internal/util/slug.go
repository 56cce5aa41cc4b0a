package util

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// slugRegex matches non-alphanumeric characters (except hyphens)
	slugRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a name or title to a URL-friendly slug. Diacritics are
// transliterated to ASCII so Vietnamese titles produce readable slugs,
// e.g. "Thiết kế nội thất" becomes "thiet-ke-noi-that".
func Slugify(s string) string {
	result := unidecode.Unidecode(s)
	result = strings.ToLower(strings.TrimSpace(result))
	result = strings.ReplaceAll(result, " ", "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
