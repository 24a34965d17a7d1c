package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// CategorySelection is one row of the joined view over a user's subcategory
// selections, used to populate category pickers.
type CategorySelection struct {
	SelectionID     uuid.UUID           `json:"selectionId"`
	SubCategoryID   uuid.UUID           `json:"subCategoryId"`
	SubCategoryName string              `json:"subCategoryName"`
	CategoryID      uuid.UUID           `json:"categoryId"`
	CategoryName    string              `json:"categoryName"`
	CategoryType    models.CategoryType `json:"categoryType"`
}

// AddUserCategory opts a user into tracking a subcategory. The pair of user
// and subcategory is unique.
func (l *Ledger) AddUserCategory(userID, subCategoryID uuid.UUID) (models.UserSubCategory, error) {
	selection := models.UserSubCategory{
		UserID:        userID,
		SubCategoryID: subCategoryID,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			return referential(err, models.ErrNoSuchUser)
		}

		if err := tx.First(&models.SubCategory{}, subCategoryID).Error; err != nil {
			return referential(err, models.ErrNoSuchSubCategory)
		}

		return tx.Create(&selection).Error
	})
	if err != nil {
		return models.UserSubCategory{}, err
	}

	return selection, nil
}

// UserCategoryByID returns the selection with the given ID.
func (l *Ledger) UserCategoryByID(id uuid.UUID) (models.UserSubCategory, error) {
	var selection models.UserSubCategory
	err := l.db.First(&selection, id).Error
	return selection, err
}

// RemoveUserCategory deletes an opt-in row and returns the number of rows
// removed. The underlying subcategory and any transactions that reference
// it historically are left untouched, ledger history survives an opt-out.
func (l *Ledger) RemoveUserCategory(id uuid.UUID) (int64, error) {
	res := l.db.Delete(&models.UserSubCategory{}, id)
	return res.RowsAffected, res.Error
}

// UserCategories returns the joined selection → subcategory → category view
// for the user. An unknown user is reported as not found.
func (l *Ledger) UserCategories(userID uuid.UUID) ([]CategorySelection, error) {
	if err := l.db.First(&models.User{}, userID).Error; err != nil {
		return nil, err
	}

	selections := make([]CategorySelection, 0)
	err := l.db.
		Model(&models.UserSubCategory{}).
		Select(`user_sub_categories.id AS selection_id,
			sub_categories.id AS sub_category_id,
			sub_categories.name AS sub_category_name,
			categories.id AS category_id,
			categories.name AS category_name,
			categories.type AS category_type`).
		Joins("JOIN sub_categories ON sub_categories.id = user_sub_categories.sub_category_id AND sub_categories.deleted_at IS NULL").
		Joins("JOIN categories ON categories.id = sub_categories.category_id AND categories.deleted_at IS NULL").
		Where("user_sub_categories.user_id = ?", userID).
		Order("categories.name ASC, sub_categories.name ASC").
		Scan(&selections).Error

	return selections, err
}
