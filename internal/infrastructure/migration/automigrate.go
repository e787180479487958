package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-automigrate"),
	}
}

// Migrate runs GORM AutoMigrate over the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting GORM AutoMigrate", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model in migration order
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PasswordResetTokenModel{},
		&models.ProductModel{},
		&models.ProductVersionModel{},
		&models.SequenceFileModel{},
		&models.UploadSessionModel{},
		&models.OrderModel{},
		&models.EntitlementModel{},
		&models.DownloadTokenModel{},
		&models.ReviewModel{},
		&models.AuditLogModel{},
	}
}
