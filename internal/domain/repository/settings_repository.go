package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// SettingsRepository defines the persistence port for the singleton settings
// record. Get always succeeds once the store is initialized (the row is
// seeded with company defaults at schema creation).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Update(settings *entity.Settings) error
}
