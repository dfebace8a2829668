package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.1.0"

// versionStep upgrades the schema to version
type versionStep struct {
	version     string
	description string
	run         func(ctx context.Context) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db            *gorm.DB
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	constraintMgr *ConstraintManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:            db,
		logger:        logger,
		timeProvider:  timeProvider,
		constraintMgr: NewConstraintManager(db, logger),
	}
}

// steps lists every schema version in order
func (m *MigrationManager) steps() []versionStep {
	return []versionStep{
		{version: "1.0.0", description: "Roles, users, accounts and transactions", run: m.autoMigrateModels},
		{version: "1.1.0", description: "Foreign keys, balance check and indexes", run: m.constraintMgr.CreateConstraints},
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion, applying only the steps
// newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	pending, err := pendingSteps(m.steps(), currentVersion)
	if err != nil {
		return err
	}

	for _, step := range pending {
		m.logger.Info("Applying schema version", map[string]any{
			"from":    currentVersion,
			"version": step.version,
			"details": step.description,
		})

		if err := step.run(ctx); err != nil {
			m.logger.Error("Failed to apply schema version", map[string]any{
				"error":   err.Error(),
				"version": step.version,
			})
			return err
		}

		if err := m.setVersion(ctx, step.version, step.description); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": step.version,
			})
			return err
		}
		currentVersion = step.version
	}

	m.constraintMgr.ApplyPerformanceTweaks(ctx)

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pendingSteps returns the steps after currentVersion; "" means a fresh database
func pendingSteps(steps []versionStep, currentVersion string) ([]versionStep, error) {
	if currentVersion == "" {
		return steps, nil
	}
	for i, step := range steps {
		if step.version == currentVersion {
			return steps[i+1:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version: %s", currentVersion)
}

// GetCurrentVersion returns the last applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates the tables of every model
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Account{},
		&model.Transaction{},
	)
}
