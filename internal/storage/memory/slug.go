package memory

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title: lowercase, whitespace
// to hyphens, strip everything outside [a-z0-9-], collapse hyphen runs, trim
// edge hyphens. An empty result falls back to "hotel".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Join(strings.Fields(s), "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "hotel"
	}
	return s
}

// SlugToTitle is the display-oriented inverse: hyphens back to spaces, each
// word capitalized.
func SlugToTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
