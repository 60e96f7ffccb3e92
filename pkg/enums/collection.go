package enums

import (
	"fmt"
	"strings"
)

// CollectionCategory names one of a user's ordered reference lists.
type CollectionCategory string

const (
	CollectionLiked   CollectionCategory = "liked"
	CollectionDeleted CollectionCategory = "deleted"
)

var validCollectionCategories = []CollectionCategory{
	CollectionLiked,
	CollectionDeleted,
}

// String implements fmt.Stringer.
func (c CollectionCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CollectionCategory.
func (c CollectionCategory) IsValid() bool {
	for _, candidate := range validCollectionCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCollectionCategory converts raw input into a CollectionCategory.
// "saved" is accepted as an alias for liked.
func ParseCollectionCategory(value string) (CollectionCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "saved" {
		return CollectionLiked, nil
	}
	for _, candidate := range validCollectionCategories {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid collection category %q", value)
}
