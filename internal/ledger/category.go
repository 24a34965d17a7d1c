package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// CreateCategory persists a new category.
func (l *Ledger) CreateCategory(category models.Category) (models.Category, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// CategoryByID returns the category with the given ID.
func (l *Ledger) CategoryByID(id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := l.db.First(&category, id).Error
	return category, err
}

// CategoryByName returns the category with the given name.
func (l *Ledger) CategoryByName(name string) (models.Category, error) {
	var category models.Category
	err := l.db.Where("name = ?", name).First(&category).Error
	return category, err
}

// Categories returns the global category taxonomy.
func (l *Ledger) Categories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := l.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// UpdateCategory re-persists the full category.
func (l *Ledger) UpdateCategory(category models.Category) (models.Category, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, category.ID).Error; err != nil {
			return err
		}

		return tx.Save(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// DeleteCategory removes a category and returns the number of rows removed.
// Categories with subcategories cannot be deleted.
func (l *Ledger) DeleteCategory(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Model(&models.SubCategory{}).Where("category_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrCategoryInUse
		}

		res := tx.Delete(&models.Category{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}

// CreateSubCategory persists a new subcategory under its parent category.
func (l *Ledger) CreateSubCategory(subCategory models.SubCategory) (models.SubCategory, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, subCategory.CategoryID).Error; err != nil {
			return referential(err, models.ErrNoSuchCategory)
		}

		return tx.Create(&subCategory).Error
	})
	if err != nil {
		return models.SubCategory{}, err
	}

	return subCategory, nil
}

// SubCategoryByID returns the subcategory with the given ID.
func (l *Ledger) SubCategoryByID(id uuid.UUID) (models.SubCategory, error) {
	var subCategory models.SubCategory
	err := l.db.First(&subCategory, id).Error
	return subCategory, err
}

// SubCategoryByName returns the subcategory with the given name under the
// category. The lookup is scoped because subcategory names are only unique
// within their parent.
func (l *Ledger) SubCategoryByName(categoryID uuid.UUID, name string) (models.SubCategory, error) {
	var subCategory models.SubCategory
	err := l.db.Where("category_id = ? AND name = ?", categoryID, name).First(&subCategory).Error
	return subCategory, err
}

// SubCategoriesByCategory returns all subcategories of the category. An
// unknown category is reported as not found.
func (l *Ledger) SubCategoriesByCategory(categoryID uuid.UUID) ([]models.SubCategory, error) {
	if err := l.db.First(&models.Category{}, categoryID).Error; err != nil {
		return nil, err
	}

	subCategories := make([]models.SubCategory, 0)
	err := l.db.Where(&models.SubCategory{CategoryID: categoryID}).Order("name ASC").Find(&subCategories).Error
	return subCategories, err
}

// UpdateSubCategory re-persists the full subcategory.
func (l *Ledger) UpdateSubCategory(subCategory models.SubCategory) (models.SubCategory, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.SubCategory{}, subCategory.ID).Error; err != nil {
			return err
		}

		if err := tx.First(&models.Category{}, subCategory.CategoryID).Error; err != nil {
			return referential(err, models.ErrNoSuchCategory)
		}

		return tx.Save(&subCategory).Error
	})
	if err != nil {
		return models.SubCategory{}, err
	}

	return subCategory, nil
}

// DeleteSubCategory removes a subcategory and returns the number of rows
// removed. Subcategories that are still selected by a user or referenced by
// transactions cannot be deleted.
func (l *Ledger) DeleteSubCategory(id uuid.UUID) (int64, error) {
	var count int64

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Model(&models.UserSubCategory{}).Where("sub_category_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrSubCategoryInUse
		}

		err = tx.Model(&models.Transaction{}).Where("sub_category_id = ?", id).Count(&dependents).Error
		if err != nil {
			return err
		}
		if dependents > 0 {
			return models.ErrSubCategoryInUse
		}

		res := tx.Delete(&models.SubCategory{}, id)
		count = res.RowsAffected
		return res.Error
	})

	return count, err
}
