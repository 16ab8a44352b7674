package persistence

import "strings"

// ValidateSortField returns the field if it is in the allowed set,
// otherwise the fallback. Keeps ORDER BY free of injected input.
func ValidateSortField(field string, allowed map[string]bool, fallback string) string {
	if allowed[field] {
		return field
	}
	return fallback
}

// ValidateSortOrder normalizes the sort direction to ASC or DESC.
func ValidateSortOrder(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "ASC"
	}
	return "DESC"
}
