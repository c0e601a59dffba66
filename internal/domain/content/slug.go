package content

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for:
	  • generating URL-safe slugs from titles
	  • building canonical public URLs
	- No persistence, no visibility logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug from a page title.
// Example: "Unsere Leistungen" -> "unsere-leistungen"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, "ä", "ae")
	base = strings.ReplaceAll(base, "ö", "oe")
	base = strings.ReplaceAll(base, "ü", "ue")
	base = strings.ReplaceAll(base, "ß", "ss")
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "page"
	}
	return base
}

// ValidSlug reports whether a slug is already in canonical form.
func ValidSlug(slug string) bool {
	return slug != "" && slug == MakeSlug(slug)
}

// BuildPublicURL builds the public page URL from a slug.
// Example: "leistungen" -> "https://wellnesstal.de/leistungen"
func BuildPublicURL(baseURL, slug string) string {
	base := strings.TrimRight(baseURL, "/")
	if slug == "" || slug == "home" {
		return base + "/"
	}
	return base + "/" + slug
}
