package export

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx"
)

// SheetName is the name of the only sheet in a quote workbook
const SheetName = "Quote"

var columnWidths = []float64{30, 12, 20, 10, 10, 12, 12, 12, 8, 12}

// qtyColumn is stored as a number so the sheet can sum it
const qtyColumn = 8

// RenderSpreadsheet writes the quote as an .xlsx workbook.
// Cell values come from the same rows as the document, so both carry identical totals.
func RenderSpreadsheet(r Report) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	addRow(sheet, r.Title)
	addRow(sheet, r.Subtitle)
	addRow(sheet)
	addRow(sheet, "Client Information")
	addRow(sheet, "Full Name:", r.Client.FullName)
	addRow(sheet, "Email:", r.Client.Email)
	addRow(sheet, "Company:", r.Client.Company)
	addRow(sheet, "Property Address:", r.Client.PropertyAddress)
	addRow(sheet, "Request Number:", r.RequestNumber)
	addRow(sheet, "Request Date:", r.RequestDate)
	addRow(sheet)
	addRow(sheet, "Budget Estimate Details")

	header := sheet.AddRow()
	for _, h := range Columns {
		header.AddCell().SetString(h)
	}

	for _, line := range r.Rows {
		row := sheet.AddRow()
		for i, v := range line.Cells() {
			if i == qtyColumn {
				row.AddCell().SetInt(line.Quantity)
				continue
			}
			row.AddCell().SetString(v)
		}
	}

	if r.Disclaimer != "" {
		addRow(sheet)
		addRow(sheet, r.Disclaimer)
	}
	addRow(sheet)
	addRow(sheet, r.TotalText)
	addRow(sheet)
	addRow(sheet, NoticeHeading)
	for _, n := range r.Notices {
		addRow(sheet, n)
	}
	addRow(sheet)
	addRow(sheet, r.GeneratedOn)
	if r.ContactLine != "" {
		addRow(sheet, r.ContactLine)
	}

	for i, w := range columnWidths {
		if err := sheet.SetColWidth(i, i, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
