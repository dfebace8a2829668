package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// constraint is a named table constraint added with ALTER TABLE
type constraint struct {
	name       string
	table      string
	definition string
}

// tableConstraints are the relations between tables. Deletes are restricted,
// so removing a referenced row fails instead of cascading.
var tableConstraints = []constraint{
	{
		name:       "fk_users_role",
		table:      "users",
		definition: "FOREIGN KEY (role_id) REFERENCES roles (id) ON DELETE RESTRICT",
	},
	{
		name:       "fk_accounts_owner",
		table:      "accounts",
		definition: "FOREIGN KEY (owner_id) REFERENCES users (id) ON DELETE RESTRICT",
	},
	{
		name:       "fk_transactions_account",
		table:      "transactions",
		definition: "FOREIGN KEY (account_id) REFERENCES accounts (id) ON DELETE RESTRICT",
	},
	{
		name:       "chk_accounts_balance_non_negative",
		table:      "accounts",
		definition: "CHECK (balance >= 0)",
	},
}

// ConstraintManager manages PostgreSQL constraints and storage settings
type ConstraintManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewConstraintManager creates a new constraint manager
func NewConstraintManager(db *gorm.DB, logger coreport.Logger) *ConstraintManager {
	return &ConstraintManager{
		db:     db,
		logger: logger,
	}
}

// CreateConstraints adds every missing constraint
func (m *ConstraintManager) CreateConstraints(ctx context.Context) error {
	m.logger.Info("Creating table constraints", nil)

	for _, c := range tableConstraints {
		exists, err := m.constraintExists(ctx, c.name)
		if err != nil {
			m.logger.Error("Failed to look up constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
		if exists {
			continue
		}

		if err := m.db.WithContext(ctx).Exec("ALTER TABLE " + c.table + " ADD CONSTRAINT " + c.name + " " + c.definition).Error; err != nil {
			m.logger.Error("Failed to create constraint", map[string]any{
				"constraint": c.name,
				"table":      c.table,
				"error":      err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Table constraints created successfully", nil)
	return nil
}

func (m *ConstraintManager) constraintExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw("SELECT count(*) FROM pg_constraint WHERE conname = ?", name).Scan(&count).Error
	return count > 0, err
}

// ApplyPerformanceTweaks tunes storage of the tables updated on every transaction.
// Failures are logged and ignored.
func (m *ConstraintManager) ApplyPerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// balances are rewritten in place on every transaction
	if err := m.db.WithContext(ctx).Exec("ALTER TABLE accounts SET (fillfactor = 90)").Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec("ALTER TABLE transactions ALTER COLUMN account_id SET STATISTICS 1000").Error; err != nil {
		m.logger.Warn("Failed to set statistics target for account_id", map[string]any{
			"error": err.Error(),
		})
	}
}
