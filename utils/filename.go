package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// QuoteFileName builds the download name for a quote export.
// Example: QuoteFileName("ORD-20261018-1A2B3C4D", "pdf") -> "Quote-ORD-20261018-1A2B3C4D.pdf"
func QuoteFileName(requestNumber, ext string) string {
	name := unsafeFileChars.ReplaceAllString(strings.TrimSpace(requestNumber), "_")
	if name == "" {
		name = "draft"
	}
	return fmt.Sprintf("Quote-%s.%s", name, strings.TrimPrefix(strings.ToLower(ext), "."))
}

// ContentDisposition returns an attachment header value for name
func ContentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, name)
}
