package export

import (
	"strconv"

	"github.com/shopspring/decimal"

	"signage-quote/models"
	"signage-quote/quote"
	"signage-quote/utils"
)

const (
	Title            = "Signage Budget Estimate"
	PendingReview    = "Pending review"
	CustomDisclaimer = "* Custom products require review before a price can be provided."
	NoticeHeading    = "Important Notice"
)

// Columns is the field order shared by every export format
var Columns = []string{
	"Sign Name", "Code", "Dimensions", "SQ FT", "Backer",
	"Illuminated", "Custom Size", "Unit Price", "Qty", "Total",
}

// Notices are printed under the total of every export
var Notices = []string{
	"This report serves as an estimate and does not include shipping or installation costs.",
	"A site survey is necessary to confirm the scope and generate an official quotation.",
	"Custom products require additional review and pricing before inclusion in the budget.",
	"The amounts shown should be considered a wish list or estimate only. A formal quote will be issued once the survey project is completed.",
}

// Row is one quoted line with every value already formatted
type Row struct {
	Name        string
	Code        string
	Dimensions  string
	Sqft        string
	Backer      string
	Illuminated string
	CustomSize  string
	UnitPrice   string
	Quantity    int
	Total       string
	Notes       string
	Pending     bool
	LineTotal   decimal.Decimal
}

// Cells returns the row values in Columns order
func (r Row) Cells() []string {
	return []string{
		r.Name, r.Code, r.Dimensions, r.Sqft, r.Backer,
		r.Illuminated, r.CustomSize, r.UnitPrice, strconv.Itoa(r.Quantity), r.Total,
	}
}

// Report is the single model every export renders from
type Report struct {
	Title         string
	Subtitle      string
	RequestNumber string
	RequestDate   string
	Client        models.ClientInfo
	Rows          []Row
	GrandTotal    decimal.Decimal
	TotalText     string
	HasCustom     bool
	Disclaimer    string
	Notices       []string
	GeneratedOn   string
	ContactLine   string
}

// BuildReport formats a quote. It reads nothing but its arguments, so equal inputs give equal reports.
func BuildReport(q *quote.Request, brand models.Brand) Report {
	rows := BuildRows(q.Lines())

	r := Report{
		Title:         Title,
		Subtitle:      brand.Subtitle,
		RequestNumber: q.Number(),
		RequestDate:   q.FormattedDate(),
		Client:        q.Client(),
		Rows:          rows,
		GrandTotal:    q.Total(),
		TotalText:     "TOTAL AMOUNT: " + utils.FormatUSD(q.Total()),
		HasCustom:     q.HasCustomLines(),
		Notices:       append([]string(nil), Notices...),
		GeneratedOn:   "Generated on: " + q.Date().Format("1/2/2006, 3:04:05 PM"),
	}
	if r.Subtitle == "" {
		r.Subtitle = brand.Name
	}
	if r.HasCustom {
		r.Disclaimer = CustomDisclaimer
	}
	if brand.ContactEmail != "" {
		r.ContactLine = "For questions about this estimate, please contact: " + brand.ContactEmail
	}
	return r
}

// BuildRows formats quote lines in order
func BuildRows(lines []models.LineItem) []Row {
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, buildRow(l))
	}
	return rows
}

func buildRow(l models.LineItem) Row {
	row := Row{
		Name:        l.Name,
		Code:        l.Code,
		Dimensions:  l.Dimensions,
		Sqft:        utils.FormatSqft(l.Sqft),
		Backer:      utils.YesNo(l.BackerPanel),
		Illuminated: utils.YesNo(l.Illuminated),
		CustomSize:  utils.YesNo(l.CustomSize),
		UnitPrice:   utils.FormatUSD(l.UnitPrice),
		Quantity:    l.Quantity,
		LineTotal:   l.LineTotal(),
		Total:       utils.FormatUSD(l.LineTotal()),
		Notes:       l.Notes,
		Pending:     l.PricePending(),
	}
	if row.Code == "" {
		row.Code = l.ProductID
	}
	if row.Pending {
		row.UnitPrice = PendingReview
	}
	return row
}
