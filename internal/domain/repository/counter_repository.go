package repository

// CounterRepository is the identifier allocator: one monotonic counter per
// collection name, initialized to zero on first use. Values are never reused,
// even when records are deleted: document number sequences draw from their
// own counters (quote_numbers, invoice_numbers) so deletion can never cause a
// number collision.
type CounterRepository interface {
	// Next increments the named counter and returns the new value. The
	// increment is persisted before the caller writes the record that uses it.
	Next(name string) (int64, error)
}
