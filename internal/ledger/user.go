package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// CreateUser persists a new user. The password must already be hashed.
func (l *Ledger) CreateUser(user models.User) (models.User, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	l.log.Debug().Str("username", user.Username).Msg("user created")
	return user, nil
}

// UserByID returns the user with the given ID.
func (l *Ledger) UserByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := l.db.First(&user, id).Error
	return user, err
}

// UserByUsername returns the user with the given username.
func (l *Ledger) UserByUsername(username string) (models.User, error) {
	var user models.User
	err := l.db.Where("username = ?", username).First(&user).Error
	return user, err
}

// Users returns all registered users.
func (l *Ledger) Users() ([]models.User, error) {
	users := make([]models.User, 0)
	err := l.db.Order("username ASC").Find(&users).Error
	return users, err
}

// UpdateUser re-persists the full user.
func (l *Ledger) UpdateUser(user models.User) (models.User, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, user.ID).Error; err != nil {
			return err
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes a user and returns the number of rows removed.
// Deleting a user that still owns accounts, income sources or subcategory
// selections fails with a descriptive error.
func (l *Ledger) DeleteUser(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Model(&models.Account{}).Where("user_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrUserInUse
		}

		err = tx.Model(&models.Income{}).Where("user_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrUserInUse
		}

		err = tx.Model(&models.UserSubCategory{}).Where("user_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrUserInUse
		}

		res := tx.Delete(&models.User{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}
