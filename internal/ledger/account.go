package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// CreateAccount persists a new account. The balance it carries at creation
// time is the account's initial balance; from then on only transactions
// mutate it.
func (l *Ledger) CreateAccount(account models.Account) (models.Account, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, account.UserID).Error; err != nil {
			return referential(err, models.ErrNoSuchUser)
		}

		return tx.Create(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	l.log.Debug().Str("account", account.Name).Msg("account created")
	return account, nil
}

// AccountByID returns the account with the given ID.
func (l *Ledger) AccountByID(id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := l.db.First(&account, id).Error
	return account, err
}

// AccountByName returns the account with the given name. Account names are
// unique across the whole instance, so no scope is needed.
func (l *Ledger) AccountByName(name string) (models.Account, error) {
	var account models.Account
	err := l.db.Where("name = ?", name).First(&account).Error
	return account, err
}

// Accounts returns all accounts on this instance.
func (l *Ledger) Accounts() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := l.db.Order("name ASC").Find(&accounts).Error
	return accounts, err
}

// AccountsByUser returns all accounts owned by the user. An unknown user is
// reported as not found so that callers can distinguish it from a user
// without accounts.
func (l *Ledger) AccountsByUser(userID uuid.UUID) ([]models.Account, error) {
	if err := l.db.First(&models.User{}, userID).Error; err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0)
	err := l.db.Where(&models.Account{UserID: userID}).Order("name ASC").Find(&accounts).Error
	return accounts, err
}

// UpdateAccount re-persists the full account.
func (l *Ledger) UpdateAccount(account models.Account) (models.Account, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Account{}, account.ID).Error; err != nil {
			return err
		}

		if err := tx.First(&models.User{}, account.UserID).Error; err != nil {
			return referential(err, models.ErrNoSuchUser)
		}

		return tx.Save(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// DeleteAccount removes an account and returns the number of rows removed.
// Accounts that still have transactions or income sources cannot be
// deleted.
func (l *Ledger) DeleteAccount(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Model(&models.Transaction{}).
			Where("account_id = ?", id).
			Or("target_account_id = ?", id).
			Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrAccountInUse
		}

		err = tx.Model(&models.Income{}).Where("account_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrAccountInUse
		}

		res := tx.Delete(&models.Account{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}
