package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
)

func sampleSale() domain.Sale {
	return domain.Sale{
		InvoiceID:   45231,
		Date:        time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC),
		Customer:    "Rina Akter",
		Phone:       "01711111111",
		TotalAmount: decimal.RequireFromString("415.00"),
		Items: []domain.SaleItem{
			{Name: "Basmati Rice (1kg)", Qty: 2, Price: decimal.NewFromInt(120)},
			{Name: "Fresh Milk (1L)", Qty: 1, Price: decimal.NewFromInt(70)},
			{Name: "Masala Powder (100g)", Qty: 1, Price: decimal.NewFromInt(65)},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleSale())
	assert.NoError(t, err)

	rendered := string(html)
	assert.Contains(t, rendered, "Invoice No:</strong> 45231")
	assert.Contains(t, rendered, "Rina Akter")
	assert.Contains(t, rendered, "01711111111")
	assert.Contains(t, rendered, "Basmati Rice (1kg)")
	assert.Contains(t, rendered, "415.00 Tk")
}

func TestRenderHTML_OmitsEmptyPhone(t *testing.T) {
	sale := sampleSale()
	sale.Phone = ""

	html, err := RenderHTML(sale)
	assert.NoError(t, err)
	assert.NotContains(t, string(html), "Phone:")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport([]domain.Sale{sampleSale()}, &buf)
	assert.NoError(t, err)
	// xlsx files are zip archives
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}
