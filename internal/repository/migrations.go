package repository

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fuzumoe/gopaginate/internal/model"
)

// Migrator is the part of *gorm.DB used by Migrate.
type Migrator interface {
	AutoMigrate(dst ...any) error
}

// Migrate creates or updates the table of every registered model, one
// model at a time so a failure names the offending table.
func Migrate(m Migrator) error {
	for _, mdl := range model.AllModels {
		table := tableName(mdl)
		if err := m.AutoMigrate(mdl); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
		log.Debug().Str("table", table).Msg("table migrated")
	}
	log.Info().Int("models", len(model.AllModels)).Msg("migrations applied")
	return nil
}

func tableName(mdl any) string {
	if t, ok := mdl.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", mdl)
}
