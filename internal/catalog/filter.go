package catalog

import "strings"

// Filter is a conjunction of optional predicates over catalog items.
// All values are trimmed and lowercased on construction.
type Filter struct {
	Genders    []string
	Categories []string
	Colors     []string
	Search     string
}

// NewFilter normalizes raw filter input. Blank values are dropped.
func NewFilter(genders, categories, colors []string, search string) Filter {
	return Filter{
		Genders:    normalizeValues(genders),
		Categories: normalizeValues(categories),
		Colors:     normalizeValues(colors),
		Search:     normalize(search),
	}
}

// IsEmpty reports whether no predicate is active.
func (f Filter) IsEmpty() bool {
	return len(f.Genders) == 0 &&
		len(f.Categories) == 0 &&
		len(f.Colors) == 0 &&
		f.Search == ""
}

// Matches evaluates the filter against a single item in memory.
func (f Filter) Matches(item Item) bool {
	if len(f.Genders) > 0 && !containsFold(f.Genders, item.Gender) {
		return false
	}
	if len(f.Categories) > 0 && !anyFold(f.Categories, item.Categories) {
		return false
	}
	if len(f.Colors) > 0 && !anySubstring(f.Colors, item.Colors) {
		return false
	}
	if f.Search != "" {
		name := strings.ToLower(item.Name)
		description := strings.ToLower(item.Description)
		if !strings.Contains(name, f.Search) && !strings.Contains(description, f.Search) {
			return false
		}
	}
	return true
}

// SplitList splits a comma separated query value.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func containsFold(set []string, value string) bool {
	value = normalize(value)
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

func anyFold(set []string, values []string) bool {
	for _, v := range values {
		if containsFold(set, v) {
			return true
		}
	}
	return false
}

func anySubstring(needles []string, values []string) bool {
	for _, v := range values {
		lowered := strings.ToLower(v)
		for _, needle := range needles {
			if strings.Contains(lowered, needle) {
				return true
			}
		}
	}
	return false
}
