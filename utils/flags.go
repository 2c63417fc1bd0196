package utils

import "strings"

// YesNo maps a flag to the YES/NO text used in quotes and exports
func YesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

// ParseFlag maps catalog flag text to a bool.
// "YES", "Y" and "TRUE" are true; "NO", "Optional" and anything else are false.
func ParseFlag(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "Y", "TRUE":
		return true
	default:
		return false
	}
}

// ParseSqft parses square footage text from a catalog.
// Non-numeric values such as "Variable" map to 0.
func ParseSqft(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := parseFloat(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
