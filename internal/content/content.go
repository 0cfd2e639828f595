// Package content provides derivations shared by article write paths:
// URL slugs and estimated read times.
package content

import (
	"fmt"
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	htmlTag         = regexp.MustCompile(`<[^>]*>`)
)

// GenerateSlug derives a URL-safe slug from an article title: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen, no
// leading or trailing hyphens. Idempotent, so re-slugging a slug is a no-op.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CalculateReadTime estimates reading time for rich HTML content at 200
// words per minute, rounding up. Empty content yields "0 min read".
func CalculateReadTime(html string) string {
	text := htmlTag.ReplaceAllString(html, " ")
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}
