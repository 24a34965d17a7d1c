package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// checkReferences verifies that every resource a transaction points at
// exists before the row is written, so that failures surface as referential
// errors instead of raw foreign key violations.
func checkReferences(tx *gorm.DB, transaction models.Transaction) error {
	if err := tx.First(&models.Account{}, transaction.AccountID).Error; err != nil {
		return referential(err, models.ErrNoSuchAccount)
	}

	if transaction.TargetAccountID != nil && *transaction.TargetAccountID != uuid.Nil {
		if err := tx.First(&models.Account{}, *transaction.TargetAccountID).Error; err != nil {
			return referential(err, models.ErrNoSuchTargetAccount)
		}
	}

	if transaction.SubCategoryID != nil && *transaction.SubCategoryID != uuid.Nil {
		if err := tx.First(&models.SubCategory{}, *transaction.SubCategoryID).Error; err != nil {
			return referential(err, models.ErrNoSuchSubCategory)
		}
	}

	if transaction.IncomeID != nil && *transaction.IncomeID != uuid.Nil {
		if err := tx.First(&models.Income{}, *transaction.IncomeID).Error; err != nil {
			return referential(err, models.ErrNoSuchIncome)
		}
	}

	return nil
}

// applyEffect books the balance effect of a transaction. With sign = 1 the
// effect is applied, with sign = -1 it is reversed. The Value is the signed
// effect on the source account; a transfer implies the opposite movement on
// the target account.
func applyEffect(tx *gorm.DB, transaction models.Transaction, sign int64) error {
	err := tx.Model(&models.Account{}).
		Where("id = ?", transaction.AccountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", sign*transaction.Value)).Error
	if err != nil {
		return err
	}

	if transaction.Type == models.TransactionTypeTransfer && transaction.TargetAccountID != nil {
		err = tx.Model(&models.Account{}).
			Where("id = ?", *transaction.TargetAccountID).
			UpdateColumn("balance", gorm.Expr("balance - ?", sign*transaction.Value)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateTransaction validates, persists and books a transaction. On any
// failure neither the transaction row nor any account balance changes.
func (l *Ledger) CreateTransaction(transaction models.Transaction) (models.Transaction, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, transaction); err != nil {
			return err
		}

		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return applyEffect(tx, transaction, 1)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	l.log.Debug().
		Str("transaction", transaction.ID.String()).
		Int64("value", transaction.Value).
		Msg("transaction booked")
	return transaction, nil
}

// TransactionByID returns the transaction with the given ID.
func (l *Ledger) TransactionByID(id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := l.db.First(&transaction, id).Error
	return transaction, err
}

// TransactionsByAccount returns all transactions affecting the account, as
// source or as transfer target, newest first. An unknown account is
// reported as not found.
func (l *Ledger) TransactionsByAccount(accountID uuid.UUID) ([]models.Transaction, error) {
	if err := l.db.First(&models.Account{}, accountID).Error; err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0)
	err := l.db.
		Where("account_id = ?", accountID).
		Or("target_account_id = ?", accountID).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

// TransactionsByUser returns all transactions against accounts owned by
// the user, newest first. An unknown user is reported as not found.
func (l *Ledger) TransactionsByUser(userID uuid.UUID) ([]models.Transaction, error) {
	if err := l.db.First(&models.User{}, userID).Error; err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0)
	err := l.db.
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

// SearchTransactions returns the user's transactions whose description
// matches the glob pattern, e.g. "rent*" or "*insurance*".
func (l *Ledger) SearchTransactions(userID uuid.UUID, pattern string) ([]models.Transaction, error) {
	transactions, err := l.TransactionsByUser(userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Transaction, 0)
	for _, transaction := range transactions {
		if glob.Glob(pattern, transaction.Description) {
			matched = append(matched, transaction)
		}
	}

	return matched, nil
}

// UpdateTransaction re-persists the full transaction. The old balance
// effect is reversed before the new one is applied; reversing first is what
// keeps balances from double counting.
func (l *Ledger) UpdateTransaction(transaction models.Transaction) (models.Transaction, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var old models.Transaction
		if err := tx.First(&old, transaction.ID).Error; err != nil {
			return err
		}

		if err := applyEffect(tx, old, -1); err != nil {
			return err
		}

		if err := checkReferences(tx, transaction); err != nil {
			return err
		}

		transaction.CreatedAt = old.CreatedAt
		if err := tx.Save(&transaction).Error; err != nil {
			return err
		}

		return applyEffect(tx, transaction, 1)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction reverses the balance effect of a transaction and then
// removes the row, returning the number of rows removed. Deleting an
// unknown ID removes nothing and is not an error.
func (l *Ledger) DeleteTransaction(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		err := tx.First(&transaction, id).Error
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := applyEffect(tx, transaction, -1); err != nil {
			return err
		}

		res := tx.Delete(&models.Transaction{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}
