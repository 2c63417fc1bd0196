package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"signage-quote/models"
	"signage-quote/quote"
)

var brand = models.Brand{
	ID:           "eh",
	Name:         "Endeavor Health",
	Subtitle:     "Endeavor Health & Modulex",
	ContactEmail: "gaa.orders@modulex.com",
}

func lines(withCustom bool) []models.LineItem {
	items := []models.LineItem{{
		ID:         "l1",
		ProductID:  "ri-7",
		Code:       "RI.X.7",
		Name:       "Room ID — RI.X.7",
		Dimensions: `6.75" x 7.5"`,
		Sqft:       0.33,
		UnitPrice:  decimal.RequireFromString("210.70"),
		Quantity:   3,
	}}
	if withCustom {
		items = append(items, models.LineItem{
			ID:          "l2",
			ProductID:   "ri-7",
			OptionKey:   "custom",
			Code:        "RI.X.7",
			Name:        "Room ID — RI.X.7",
			Dimensions:  `40" x 100"`,
			Sqft:        4000.0 / 144,
			UnitPrice:   decimal.Zero,
			Quantity:    1,
			BackerPanel: true,
			CustomSize:  true,
			Notes:       "lobby <east>",
		})
	}
	return items
}

func assemble(t *testing.T, withCustom bool) *quote.Request {
	t.Helper()
	a := quote.NewAssembler(
		quote.WithClock(func() time.Time { return time.Date(2026, time.October, 18, 14, 3, 5, 0, time.UTC) }),
		quote.WithSuffix(func() string { return "1A2B3C4D" }),
	)
	q, err := a.Assemble("eh", models.ClientInfo{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Company:         "Acme & Sons",
		PropertyAddress: "1 Main St",
	}, models.CartSnapshot{Items: lines(withCustom)})
	require.NoError(t, err)
	return q
}

func TestBuildReport(t *testing.T) {
	r := BuildReport(assemble(t, true), brand)

	assert.Equal(t, "Signage Budget Estimate", r.Title)
	assert.Equal(t, "Endeavor Health & Modulex", r.Subtitle)
	assert.Equal(t, "ORD-20261018-1A2B3C4D", r.RequestNumber)
	assert.Equal(t, "October 18, 2026", r.RequestDate)
	assert.Equal(t, "TOTAL AMOUNT: $632.10", r.TotalText)
	assert.Equal(t, "Generated on: 10/18/2026, 2:03:05 PM", r.GeneratedOn)
	assert.Equal(t, "For questions about this estimate, please contact: gaa.orders@modulex.com", r.ContactLine)
	assert.True(t, r.HasCustom)
	assert.Equal(t, CustomDisclaimer, r.Disclaimer)
	assert.Len(t, r.Notices, 4)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, []string{
		"Room ID — RI.X.7", "RI.X.7", `6.75" x 7.5"`, "0.33", "NO", "NO", "NO", "$210.70", "3", "$632.10",
	}, r.Rows[0].Cells())
	assert.False(t, r.Rows[0].Pending)

	assert.Equal(t, []string{
		"Room ID — RI.X.7", "RI.X.7", `40" x 100"`, "27.78", "YES", "NO", "YES", PendingReview, "1", "$0.00",
	}, r.Rows[1].Cells())
	assert.True(t, r.Rows[1].Pending)
}

func TestBuildReportWithoutCustomLines(t *testing.T) {
	r := BuildReport(assemble(t, false), brand)
	assert.False(t, r.HasCustom)
	assert.Empty(t, r.Disclaimer)

	html, err := RenderDocumentHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Custom products require review before a price can be provided.")

	book, err := RenderSpreadsheet(r)
	require.NoError(t, err)
	assert.NotContains(t, sheetText(t, book), CustomDisclaimer)
}

func TestBuildReportFallsBackToBrandName(t *testing.T) {
	b := brand
	b.Subtitle = ""
	b.ContactEmail = ""
	r := BuildReport(assemble(t, false), b)
	assert.Equal(t, "Endeavor Health", r.Subtitle)
	assert.Empty(t, r.ContactLine)
}

func TestRenderDocumentHTML(t *testing.T) {
	r := BuildReport(assemble(t, true), brand)

	first, err := RenderDocumentHTML(r)
	require.NoError(t, err)
	second, err := RenderDocumentHTML(r)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	html := string(first)
	for _, col := range Columns {
		assert.Contains(t, html, "<th>"+col+"</th>")
	}
	assert.Contains(t, html, "Request Number: ORD-20261018-1A2B3C4D")
	assert.Contains(t, html, "Company: Acme &amp; Sons")
	assert.Contains(t, html, "40&#34; x 100&#34;")
	assert.Contains(t, html, "lobby &lt;east&gt;")
	assert.Contains(t, html, `<span class="pending-marker">Pending review</span>`)
	assert.Contains(t, html, "Custom products require review before a price can be provided.")
	assert.Contains(t, html, "TOTAL AMOUNT: $632.10")
	assert.Equal(t, 1, strings.Count(html, `class="pending"`))
}

func TestRenderSpreadsheet(t *testing.T) {
	r := BuildReport(assemble(t, true), brand)
	book, err := RenderSpreadsheet(r)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(book)
	require.NoError(t, err)
	sheet, ok := file.Sheet[SheetName]
	require.True(t, ok)

	header := -1
	for i, row := range sheet.Rows {
		if len(row.Cells) > 0 && row.Cells[0].Value == Columns[0] {
			header = i
			break
		}
	}
	require.NotEqual(t, -1, header, "header row not found")
	assert.Equal(t, "Signage Budget Estimate", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, Columns, values(sheet.Rows[header]))

	for i, want := range r.Rows {
		assert.Equal(t, want.Cells(), values(sheet.Rows[header+1+i]))
	}

	text := sheetText(t, book)
	assert.Contains(t, text, CustomDisclaimer)
	assert.Contains(t, text, "TOTAL AMOUNT: $632.10")
	assert.Contains(t, text, "Request Number:|ORD-20261018-1A2B3C4D")
	assert.Contains(t, text, NoticeHeading)
	assert.Contains(t, text, r.GeneratedOn)
}

func TestRenderSpreadsheetIsStable(t *testing.T) {
	r := BuildReport(assemble(t, true), brand)
	first, err := RenderSpreadsheet(r)
	require.NoError(t, err)
	second, err := RenderSpreadsheet(BuildReport(assemble(t, true), brand))
	require.NoError(t, err)
	assert.Equal(t, sheetText(t, first), sheetText(t, second))
}

func TestDocumentAndSpreadsheetAgree(t *testing.T) {
	r := BuildReport(assemble(t, true), brand)

	html, err := RenderDocumentHTML(r)
	require.NoError(t, err)
	book, err := RenderSpreadsheet(r)
	require.NoError(t, err)
	text := sheetText(t, book)

	sum := decimal.Zero
	for _, row := range r.Rows {
		sum = sum.Add(row.LineTotal)
		assert.Contains(t, string(html), "<td class=\"num\">"+row.Total+"</td>")
		assert.Contains(t, text, row.Total)
	}
	assert.True(t, sum.Equal(r.GrandTotal))
	assert.Contains(t, string(html), r.TotalText)
	assert.Contains(t, text, r.TotalText)
}

func values(row *xlsx.Row) []string {
	out := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		out = append(out, c.Value)
	}
	return out
}

func sheetText(t *testing.T, book []byte) string {
	t.Helper()
	file, err := xlsx.OpenBinary(book)
	require.NoError(t, err)

	var b strings.Builder
	for _, row := range file.Sheets[0].Rows {
		b.WriteString(strings.Join(values(row), "|"))
		b.WriteByte('\n')
	}
	return b.String()
}
