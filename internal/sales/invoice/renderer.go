// Package invoice turns a recorded Sale back into the shop's printable
// invoice and into owner-facing spreadsheet reports.
package invoice

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
)

//go:embed invoice.html
var invoiceHTML string

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceHTML))

type invoiceLine struct {
	Name  string
	Qty   int
	Price string
	Total string
}

type invoiceData struct {
	Sale       domain.Sale
	Lines      []invoiceLine
	GrandTotal string
}

// RenderHTML produces the printable invoice for a sale.
func RenderHTML(sale domain.Sale) ([]byte, error) {
	data := invoiceData{
		Sale:       sale,
		GrandTotal: sale.TotalAmount.StringFixed(2),
	}
	for _, item := range sale.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		data.Lines = append(data.Lines, invoiceLine{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price.StringFixed(2),
			Total: lineTotal.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
