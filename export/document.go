package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/quote.html
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "templates/quote.html"))

type documentData struct {
	Report
	Columns       []string
	NoticeHeading string
}

// RenderDocumentHTML renders the printable quote document.
// The output depends only on the report, so the same report always yields the same bytes.
func RenderDocumentHTML(r Report) ([]byte, error) {
	var buf bytes.Buffer
	data := documentData{
		Report:        r,
		Columns:       Columns,
		NoticeHeading: NoticeHeading,
	}
	if err := documentTemplate.ExecuteTemplate(&buf, "quote.html", data); err != nil {
		return nil, fmt.Errorf("failed to render quote document: %w", err)
	}
	return buf.Bytes(), nil
}
