package invoice

import (
	"fmt"
	"io"
	"strings"

	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
	"github.com/xuri/excelize/v2"
)

// WriteReport streams the sales ledger as an xlsx workbook.
func WriteReport(sales []domain.Sale, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Add headers
	f.SetCellValue(sheet, "A1", "InvoiceNo")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Customer")
	f.SetCellValue(sheet, "D1", "Phone")
	f.SetCellValue(sheet, "E1", "Items")
	f.SetCellValue(sheet, "F1", "TotalAmount")

	// Add data
	for i, sale := range sales {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, sale.InvoiceID)
		f.SetCellValue(sheet, "B"+row, sale.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, "C"+row, sale.Customer)
		f.SetCellValue(sheet, "D"+row, sale.Phone)
		f.SetCellValue(sheet, "E"+row, describeItems(sale.Items))
		f.SetCellValue(sheet, "F"+row, sale.TotalAmount.StringFixed(2))
	}

	return f.Write(w)
}

func describeItems(items []domain.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d @ %s", item.Name, item.Qty, item.Price.StringFixed(2)))
	}
	return strings.Join(parts, "; ")
}
