package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo implements the identifier allocator on the counters table.
// The upsert persists the incremented value before the caller inserts the
// record that will carry it; deleted records never return their numbers.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository builds the adapter. Pass the DB handle or a tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next increments the named counter and returns the new value.
func (r *CounterRepo) Next(name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET value = value + 1
		RETURNING value`
	var value int64
	if err := sqlx.Get(r.q, &value, query, name); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", name, err)
	}
	return value, nil
}
