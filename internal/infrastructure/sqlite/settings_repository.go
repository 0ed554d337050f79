package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository over the singleton row.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the adapter.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get reads the settings singleton (seeded at schema creation).
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT company_name, company_phone, company_email, company_address,
		       tax_rate, invoice_prefix, quote_prefix
		FROM settings WHERE id = 1`
	var s entity.Settings
	if err := sqlx.Get(r.q, &s, query); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Update rewrites the singleton. History is untouched: documents keep the
// totals computed under the rate in force at their time.
func (r *SettingsRepo) Update(s *entity.Settings) error {
	query := `
		UPDATE settings
		SET company_name = ?, company_phone = ?, company_email = ?, company_address = ?,
		    tax_rate = ?, invoice_prefix = ?, quote_prefix = ?
		WHERE id = 1`
	_, err := r.q.Exec(query,
		s.CompanyName, s.CompanyPhone, s.CompanyEmail, s.CompanyAddress,
		s.TaxRate, s.InvoicePrefix, s.QuotePrefix,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
