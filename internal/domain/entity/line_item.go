package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItem is a quantity/unit-price pair embedded in a quote or invoice.
// Values are copied from the product catalog at the time the item is added;
// no product reference is retained afterwards.
type LineItem struct {
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	LineTotal   decimal.Decimal `db:"line_total" json:"line_total"`
}

// LineItems is a snapshot of line items stored as a JSON column (used on jobs
// created from quote conversion, where the items are frozen history rather
// than editable rows).
type LineItems []LineItem

// Value serializes the snapshot to JSON for storage.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan reads the JSON column back into the slice.
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("line_items: unsupported column type")
	}
}
