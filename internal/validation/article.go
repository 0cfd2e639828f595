package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxTitleLength    = 200
	maxSubtitleLength = 300
	maxCategoryLength = 64
	maxTagLength      = 48
	maxTags           = 12
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// reservedSlugs are path segments already claimed by the public site.
var reservedSlugs = map[string]struct{}{
	"admin":      {},
	"api":        {},
	"about":      {},
	"articles":   {},
	"categories": {},
	"tags":       {},
	"media":      {},
	"settings":   {},
	"users":      {},
	"login":      {},
	"signup":     {},
	"swagger":    {},
	"metrics":    {},
	"health":     {},
}

// ValidateArticleTitle checks title presence and length bounds.
func ValidateArticleTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	return nil
}

// ValidateArticleSubtitle checks subtitle length bounds.
func ValidateArticleSubtitle(subtitle string) error {
	if len(subtitle) > maxSubtitleLength {
		return fmt.Errorf("subtitle must not exceed %d characters", maxSubtitleLength)
	}
	return nil
}

// ValidateArticleContent checks content presence.
func ValidateArticleContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateCategory checks category length bounds.
func ValidateCategory(category string) error {
	if len(category) > maxCategoryLength {
		return fmt.Errorf("category must not exceed %d characters", maxCategoryLength)
	}
	return nil
}

// ValidateTags checks tag count and per-tag length.
func ValidateTags(tags []string) error {
	if len(tags) > maxTags {
		return fmt.Errorf("at most %d tags are allowed", maxTags)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must not be empty")
		}
		if len(tag) > maxTagLength {
			return fmt.Errorf("tag %q must not exceed %d characters", tag, maxTagLength)
		}
	}
	return nil
}

// ValidateSlug validates derived slug format and reserved names.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is empty; title must contain at least one letter or digit")
	}
	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug must contain only lowercase letters, numbers, and single hyphens")
	}
	if _, exists := reservedSlugs[slug]; exists {
		return fmt.Errorf("slug %q is reserved", slug)
	}
	return nil
}
