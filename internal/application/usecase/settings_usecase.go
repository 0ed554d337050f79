package usecase

import (
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// SettingsUseCase reads and updates the singleton business configuration.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

func (uc *SettingsUseCase) Get() (*entity.Settings, error) {
	return uc.settings.Get()
}

// Update merges the non-nil fields into the current record. A changed tax
// rate or number prefix affects only documents created afterwards.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*entity.Settings, error) {
	current, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if in.CompanyName != nil {
		current.CompanyName = *in.CompanyName
	}
	if in.CompanyPhone != nil {
		current.CompanyPhone = *in.CompanyPhone
	}
	if in.CompanyEmail != nil {
		current.CompanyEmail = *in.CompanyEmail
	}
	if in.CompanyAddress != nil {
		current.CompanyAddress = *in.CompanyAddress
	}
	if in.TaxRate != nil {
		current.TaxRate = *in.TaxRate
	}
	if in.InvoicePrefix != nil {
		current.InvoicePrefix = *in.InvoicePrefix
	}
	if in.QuotePrefix != nil {
		current.QuotePrefix = *in.QuotePrefix
	}
	if err := uc.settings.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}
