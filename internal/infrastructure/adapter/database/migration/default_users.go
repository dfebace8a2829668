package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// defaultRoles are created on every start when missing
var defaultRoles = []string{entity.RoleUser, entity.RoleAdmin}

// AdminAccount describes the administrator created on first start
type AdminAccount struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Seeder creates the default roles and administrator
type Seeder struct {
	db     *gorm.DB
	hasher security.PasswordHasher
	logger coreport.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, hasher security.PasswordHasher, logger coreport.Logger) *Seeder {
	return &Seeder{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

// SeedDefaults creates missing roles, then the administrator when admin has a
// password and no user has its username yet
func (s *Seeder) SeedDefaults(ctx context.Context, admin AdminAccount) error {
	roleIDs := make(map[string]uint64, len(defaultRoles))
	for _, role := range defaultRoles {
		id, err := s.ensureRole(ctx, role)
		if err != nil {
			return err
		}
		roleIDs[role] = id
	}

	if admin.Username == "" || admin.Password == "" {
		s.logger.Info("No administrator credentials configured, skipping administrator seed", nil)
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", admin.Username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up administrator: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := s.hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash administrator password: %w", err)
	}

	user := model.User{
		Username:  admin.Username,
		Password:  hashed,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		RoleID:    roleIDs[entity.RoleAdmin],
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	s.logger.Info("Administrator created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// ensureRole returns the id of the role, creating it when missing
func (s *Seeder) ensureRole(ctx context.Context, role string) (uint64, error) {
	var existing model.Role
	if err := s.db.WithContext(ctx).Where("name = ?", role).Find(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to look up role %s: %w", role, err)
	}
	if existing.ID != 0 {
		return existing.ID, nil
	}

	created := model.Role{Name: role}
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return 0, fmt.Errorf("failed to create role %s: %w", role, err)
	}
	return created.ID, nil
}
