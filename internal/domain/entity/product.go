package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry for a service or part. Line items copy its
// values; editing a product never touches documents that already quoted it.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Unit        string          `db:"unit" json:"unit,omitempty"`
	IsTaxable   bool            `db:"is_taxable" json:"is_taxable"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
