package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugAllowed = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)
	slugSqueeze = regexp.MustCompile(`-{2,}`)
)

const maxSlugLength = 120

// Slug is the URL identifier of a product. Unique per marketplace.
type Slug struct {
	value string
}

// NewSlug validates an explicit slug.
func NewSlug(value string) (*Slug, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil, fmt.Errorf("slug cannot be empty")
	}
	if len(value) > maxSlugLength {
		return nil, fmt.Errorf("slug cannot exceed %d characters", maxSlugLength)
	}
	if !slugAllowed.MatchString(value) {
		return nil, fmt.Errorf("slug may only contain lowercase letters, digits and hyphens")
	}
	return &Slug{value: value}, nil
}

// SlugFromTitle derives a slug from a product title.
func SlugFromTitle(title string) (*Slug, error) {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "-")
	s = slugSqueeze.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	return NewSlug(s)
}

func (s *Slug) String() string {
	return s.value
}

func (s *Slug) Equals(other *Slug) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.value == other.value
}
