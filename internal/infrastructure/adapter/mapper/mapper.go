// Package mapper translates between database rows and domain entities.
// A nil row maps to an empty entity so callers can treat "no row" as an empty record.
package mapper

import (
	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
)

// UserRowToEntity converts a joined user row to a user entity
func UserRowToEntity(row *model.UserRow) *entity.User {
	if row == nil {
		return &entity.User{}
	}
	return &entity.User{
		ID:        row.ID,
		Username:  row.Username,
		Password:  row.Password,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      row.RoleName,
	}
}

// UserRowsToEntities converts joined user rows to user entities
func UserRowsToEntities(rows []model.UserRow) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, UserRowToEntity(&rows[i]))
	}
	return users
}

// UserEntityToModel converts a user entity to a user model with the given role id
func UserEntityToModel(user *entity.User, roleID uint64) *model.User {
	return &model.User{
		ID:        user.ID,
		Username:  user.Username,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleID:    roleID,
	}
}

// AccountRowToEntity converts an account row to an account entity
func AccountRowToEntity(row *model.Account) *entity.Account {
	if row == nil {
		return &entity.Account{}
	}
	return &entity.Account{
		ID:      row.ID,
		Balance: row.Balance,
		Type:    row.AccountType,
		OwnerID: row.OwnerID,
	}
}

// AccountRowsToEntities converts account rows to account entities
func AccountRowsToEntities(rows []model.Account) []*entity.Account {
	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, AccountRowToEntity(&rows[i]))
	}
	return accounts
}

// AccountEntityToModel converts an account entity to an account model
func AccountEntityToModel(account *entity.Account) *model.Account {
	return &model.Account{
		ID:          account.ID,
		Balance:     account.Balance,
		AccountType: account.Type,
		OwnerID:     account.OwnerID,
	}
}

// TransactionRowToEntity converts a transaction row to a transaction entity
func TransactionRowToEntity(row *model.Transaction) *entity.Transaction {
	if row == nil {
		return &entity.Transaction{}
	}
	return &entity.Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description,
		AccountID:   row.AccountID,
	}
}

// TransactionRowsToEntities converts transaction rows to transaction entities
func TransactionRowsToEntities(rows []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, TransactionRowToEntity(&rows[i]))
	}
	return transactions
}

// TransactionEntityToModel converts a transaction entity to a transaction model
func TransactionEntityToModel(transaction *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		AccountID:   transaction.AccountID,
	}
}
