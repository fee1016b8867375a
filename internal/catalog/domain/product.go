package domain

import (
	"github.com/shopspring/decimal"
)

// Product JSON tags double as the persisted blob format, so they follow the
// original storefront's field names.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"` // case-insensitively unique
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

type UpsertProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
	Qty   int             `json:"qty" binding:"min=0"`
}
