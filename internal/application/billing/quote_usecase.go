package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/pricing"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// QuoteUseCase covers the quote lifecycle: create, update, list and the
// guarded conversion into a job.
type QuoteUseCase struct {
	quotes    repository.QuoteRepository
	customers repository.CustomerRepository
	settings  repository.SettingsRepository
	txRunner  TxRunner
}

// NewQuoteUseCase builds the use case. All writes go through the runner;
// counters are only ever touched through the transaction-bound set.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	customers repository.CustomerRepository,
	settings repository.SettingsRepository,
	txRunner TxRunner,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    quotes,
		customers: customers,
		settings:  settings,
		txRunner:  txRunner,
	}
}

// Create validates the customer reference, prices the items under the
// current tax rate and persists a draft quote with a freshly allocated
// number. Allocation, header insert and item inserts commit as one
// transaction; a failed write releases the number before it was ever
// visible, so no surviving document can collide on it.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*entity.Quote, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	// Settings reads stay outside the transaction; the store runs on a
	// single pooled connection the open transaction holds.
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	totals := pricing.Compute(items, pricing.ParseRate(cfg.TaxRate))

	var quote *entity.Quote
	err = uc.txRunner.Run(ctx, func(tx TxRepos) error {
		id, err := tx.Counters.Next("quotes")
		if err != nil {
			return err
		}
		seq, err := tx.Counters.Next("quote_numbers")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		quote = &entity.Quote{
			ID:          id,
			QuoteNumber: fmt.Sprintf("%s%04d", cfg.QuotePrefix, seq),
			CustomerID:  in.CustomerID,
			Title:       in.Title,
			Description: in.Description,
			Status:      entity.QuoteStatusDraft,
			Subtotal:    totals.Subtotal,
			Tax:         totals.Tax,
			Total:       totals.Total,
			ValidUntil:  in.ValidUntil,
			Items:       items,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return tx.Quotes.Create(quote)
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// GetByID loads one quote with items.
func (uc *QuoteUseCase) GetByID(id int64) (*entity.Quote, error) {
	quote, err := uc.quotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

// List returns quotes newest first, optionally filtered by status and customer.
func (uc *QuoteUseCase) List(status string, customerID int64) ([]*entity.Quote, error) {
	return uc.quotes.List(repository.QuoteFilter{Status: status, CustomerID: customerID})
}

// Update applies a partial update. A supplied item list replaces the stored
// one and forces a totals recompute under the tax rate in force now; an
// unknown status string is rejected. The header rewrite and item replacement
// commit as one transaction.
func (uc *QuoteUseCase) Update(ctx context.Context, id int64, in dto.UpdateQuoteRequest) (*entity.Quote, error) {
	var (
		items        []entity.LineItem
		totals       pricing.Totals
		replaceItems bool
	)
	if in.Items != nil {
		var err error
		items, err = buildItems(*in.Items)
		if err != nil {
			return nil, err
		}
		cfg, err := uc.settings.Get()
		if err != nil {
			return nil, err
		}
		totals = pricing.Compute(items, pricing.ParseRate(cfg.TaxRate))
		replaceItems = true
	}

	var quote *entity.Quote
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		var err error
		quote, err = tx.Quotes.GetByID(id)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrNotFound
		}

		if in.CustomerID != nil {
			if *in.CustomerID == 0 {
				return domain.ErrInvalidInput
			}
			quote.CustomerID = *in.CustomerID
		}
		if in.Title != nil {
			quote.Title = *in.Title
		}
		if in.Description != nil {
			quote.Description = *in.Description
		}
		if in.ValidUntil != nil {
			quote.ValidUntil = *in.ValidUntil
		}
		if in.Status != nil {
			if !entity.KnownQuoteStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			quote.Status = *in.Status
		}
		if replaceItems {
			quote.Items = items
			quote.Subtotal = totals.Subtotal
			quote.Tax = totals.Tax
			quote.Total = totals.Total
		}

		quote.UpdatedAt = time.Now().UTC()
		return tx.Quotes.Update(quote, replaceItems)
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Convert turns a quote into a scheduled job exactly once. A second call
// fails with a conflict instead of minting another job. The whole
// transition, job id allocation included, runs in one transaction.
func (uc *QuoteUseCase) Convert(ctx context.Context, id int64, in dto.ConvertQuoteRequest) (int64, error) {
	var jobID int64
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		quote, err := tx.Quotes.GetByID(id)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if quote.ConvertedJobID != nil {
			return domain.ErrConflict
		}
		if in.AssignedTo != nil {
			member, err := tx.Team.GetByID(*in.AssignedTo)
			if err != nil {
				return err
			}
			if member == nil {
				return domain.ErrInvalidInput
			}
		}

		jobID, err = tx.Counters.Next("jobs")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		job := &entity.Job{
			ID:             jobID,
			CustomerID:     quote.CustomerID,
			QuoteID:        &quote.ID,
			Title:          quote.Title,
			Description:    quote.Description,
			Status:         entity.JobStatusScheduled,
			ScheduledDate:  in.ScheduledDate,
			ScheduledTime:  in.ScheduledTime,
			AssignedTo:     in.AssignedTo,
			LineItems:      entity.LineItems(quote.Items),
			EstimatedTotal: quote.Total,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Jobs.Create(job); err != nil {
			return err
		}

		quote.Status = entity.QuoteStatusAccepted
		quote.ConvertedJobID = &jobID
		quote.UpdatedAt = now
		return tx.Quotes.Update(quote, false)
	})
	if err != nil {
		return 0, err
	}
	return jobID, nil
}
