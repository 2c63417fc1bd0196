package utils

import (
	"strconv"
	"strings"
)

// CustomOptionKey selects a user-entered size instead of a catalog option
const CustomOptionKey = "custom"

// NormalizeOptionKey trims an option key and folds the custom sentinel to lowercase.
// Variant codes and size labels are kept verbatim otherwise.
func NormalizeOptionKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, CustomOptionKey) {
		return CustomOptionKey
	}
	return key
}

// IsCustomOption reports whether key selects a custom size
func IsCustomOption(key string) bool {
	return NormalizeOptionKey(key) == CustomOptionKey
}

// ParseDimension parses a height or width query value in inches.
// An empty value is reported as 0 without error.
func ParseDimension(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), `"`))
	if s == "" {
		return 0, nil
	}
	return parseFloat(s)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
