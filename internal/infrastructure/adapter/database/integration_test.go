//go:build integration

package database

import (
	"context"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	transactionUseCase "github.com/amirhossein-jamali/bank-api/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/security"
	timeprovider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// connectTestDB connects to the database named by TEST_DB_* variables and
// migrates it. Tables are truncated when the test ends.
func connectTestDB(t *testing.T) *Manager {
	t.Helper()

	port, _ := strconv.Atoi(getEnvOrDefault("TEST_DB_PORT", "5432"))
	config := &Config{
		Driver:        "postgres",
		Host:          getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:          port,
		Username:      getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:      getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:      getEnvOrDefault("TEST_DB_DATABASE", "bank_api_test"),
		SSLMode:       "disable",
		MaxOpenConns:  20,
		MaxIdleConns:  10,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "error",
		RetryAttempts: 1,
		AutoMigrate:   true,
	}

	manager := NewManager(config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	ctx := context.Background()
	_, err := manager.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, manager.Migrate(ctx, security.NewPlaintextHasher(), migration.AdminAccount{}))

	t.Cleanup(func() {
		truncateAllTables(t, manager.DB())
		_ = manager.Close()
	})
	return manager
}

func truncateAllTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("TRUNCATE TABLE transactions, accounts, users RESTART IDENTITY CASCADE").Error)
}

func createTestAccount(t *testing.T, db *gorm.DB, balance string) uint64 {
	t.Helper()

	var role model.Role
	require.NoError(t, db.Where("name = ?", entity.RoleUser).Find(&role).Error)

	user := model.User{Username: "owner", Password: "pw", FirstName: "Owner", LastName: "Test", RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)

	account := model.Account{Balance: decimal.RequireFromString(balance), AccountType: "Checking", OwnerID: user.ID}
	require.NoError(t, db.Create(&account).Error)
	return account.ID
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	manager := connectTestDB(t)
	db := manager.DB()
	accountID := createTestAccount(t, db, "100.00")

	log := logger.NewNoopLogger()
	uc := transactionUseCase.NewTransactionUseCase(
		repository.NewTransactionRepository(db, log),
		repository.NewAccountRepository(db, log),
		manager.CreateUnitOfWork(DefaultUnitOfWorkConfig()),
		usecase.BalanceCheckAtomic,
		log,
	)

	const workers = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddNewTransaction(context.Background(), &entity.Transaction{
				Amount:    decimal.RequireFromString("-10"),
				AccountID: accountID,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.IsInsufficientFundsError(err):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, workers-10, rejected)

	var account model.Account
	require.NoError(t, db.Where("id = ?", accountID).Find(&account).Error)
	assert.True(t, account.Balance.IsZero(), "balance is %s", account.Balance)

	var count int64
	require.NoError(t, db.Model(&model.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error)
	assert.Equal(t, int64(10), count)
}

func TestDeletingAccountWithTransactionsIsRestricted(t *testing.T) {
	manager := connectTestDB(t)
	db := manager.DB()
	accountID := createTestAccount(t, db, "50.00")

	require.NoError(t, db.Create(&model.Transaction{Amount: decimal.NewFromInt(5), AccountID: accountID}).Error)

	_, err := repository.NewAccountRepository(db, logger.NewNoopLogger()).Delete(context.Background(), accountID)

	assert.ErrorIs(t, err, errs.ErrResourcePersistence)
}

func TestSavedEntitiesReadBackUnchanged(t *testing.T) {
	manager := connectTestDB(t)
	db := manager.DB()
	log := logger.NewNoopLogger()
	ctx := context.Background()

	users := repository.NewUserRepository(db, log)
	accounts := repository.NewAccountRepository(db, log)
	transactions := repository.NewTransactionRepository(db, log)

	user := &entity.User{
		Username:  "jdoe",
		Password:  "s3cret",
		FirstName: "John",
		LastName:  "Doe",
		Role:      entity.RoleUser,
	}
	savedUser, err := users.Save(ctx, user)
	require.NoError(t, err)
	require.NotZero(t, savedUser.ID)

	t.Run("user", func(t *testing.T) {
		fetched, err := users.GetByID(ctx, savedUser.ID)
		require.NoError(t, err)

		assert.Equal(t, savedUser.ID, fetched.ID)
		assert.Equal(t, user.Username, fetched.Username)
		assert.Equal(t, user.Password, fetched.Password)
		assert.Equal(t, user.FirstName, fetched.FirstName)
		assert.Equal(t, user.LastName, fetched.LastName)
		assert.Equal(t, entity.RoleUser, fetched.Role)
	})

	account := &entity.Account{
		Balance: decimal.RequireFromString("400.50"),
		Type:    "Checking",
		OwnerID: savedUser.ID,
	}
	savedAccount, err := accounts.Save(ctx, account)
	require.NoError(t, err)
	require.NotZero(t, savedAccount.ID)

	t.Run("account", func(t *testing.T) {
		fetched, err := accounts.GetByID(ctx, savedAccount.ID)
		require.NoError(t, err)

		assert.Equal(t, savedAccount.ID, fetched.ID)
		assert.True(t, account.Balance.Equal(fetched.Balance), "balance is %s", fetched.Balance)
		assert.Equal(t, account.Type, fetched.Type)
		assert.Equal(t, account.OwnerID, fetched.OwnerID)
	})

	t.Run("transaction", func(t *testing.T) {
		transaction := &entity.Transaction{
			Amount:      decimal.RequireFromString("-120.25"),
			Description: "Rent",
			AccountID:   savedAccount.ID,
		}
		saved, err := transactions.Save(ctx, transaction)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		fetched, err := transactions.GetByID(ctx, saved.ID)
		require.NoError(t, err)

		assert.Equal(t, saved.ID, fetched.ID)
		assert.True(t, transaction.Amount.Equal(fetched.Amount), "amount is %s", fetched.Amount)
		assert.Equal(t, transaction.Description, fetched.Description)
		assert.Equal(t, transaction.AccountID, fetched.AccountID)
	})
}
