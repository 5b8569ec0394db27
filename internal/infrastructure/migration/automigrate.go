package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order so
// that foreign key constraints can be created as tables are migrated.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.ServiceModel{},
		&models.ServicePartModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
		&models.PurchaseModel{},
		&models.PurchaseItemModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema directly from the model structs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy.
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

// Migrate runs GORM AutoMigrate for the given models.
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

// GetName returns the strategy name.
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
