package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// CreateIncome persists a new income source.
func (l *Ledger) CreateIncome(income models.Income) (models.Income, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, income.UserID).Error; err != nil {
			return referential(err, models.ErrNoSuchUser)
		}

		if err := tx.First(&models.Account{}, income.AccountID).Error; err != nil {
			return referential(err, models.ErrNoSuchAccount)
		}

		return tx.Create(&income).Error
	})
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

// IncomeByID returns the income source with the given ID.
func (l *Ledger) IncomeByID(id uuid.UUID) (models.Income, error) {
	var income models.Income
	err := l.db.First(&income, id).Error
	return income, err
}

// IncomeByName returns the income source with the given name.
func (l *Ledger) IncomeByName(name string) (models.Income, error) {
	var income models.Income
	err := l.db.Where("name = ?", name).First(&income).Error
	return income, err
}

// IncomesByUser returns all income sources of the user. An unknown user is
// reported as not found.
func (l *Ledger) IncomesByUser(userID uuid.UUID) ([]models.Income, error) {
	if err := l.db.First(&models.User{}, userID).Error; err != nil {
		return nil, err
	}

	incomes := make([]models.Income, 0)
	err := l.db.Where(&models.Income{UserID: userID}).Order("name ASC").Find(&incomes).Error
	return incomes, err
}

// IncomesByAccount returns all income sources paying into the account. An
// unknown account is reported as not found.
func (l *Ledger) IncomesByAccount(accountID uuid.UUID) ([]models.Income, error) {
	if err := l.db.First(&models.Account{}, accountID).Error; err != nil {
		return nil, err
	}

	incomes := make([]models.Income, 0)
	err := l.db.Where(&models.Income{AccountID: accountID}).Order("name ASC").Find(&incomes).Error
	return incomes, err
}

// UpdateIncome re-persists the full income source.
func (l *Ledger) UpdateIncome(income models.Income) (models.Income, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Income{}, income.ID).Error; err != nil {
			return err
		}

		if err := tx.First(&models.User{}, income.UserID).Error; err != nil {
			return referential(err, models.ErrNoSuchUser)
		}

		if err := tx.First(&models.Account{}, income.AccountID).Error; err != nil {
			return referential(err, models.ErrNoSuchAccount)
		}

		return tx.Save(&income).Error
	})
	if err != nil {
		return models.Income{}, err
	}

	return income, nil
}

// DeleteIncome removes an income source and returns the number of rows
// removed. Income sources that are still referenced by transactions cannot
// be deleted, the transaction log keeps its history.
func (l *Ledger) DeleteIncome(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Model(&models.Transaction{}).Where("income_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrIncomeInUse
		}

		res := tx.Delete(&models.Income{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}
