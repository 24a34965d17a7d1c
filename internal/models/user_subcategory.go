package models

import (
	"github.com/google/uuid"
)

// UserSubCategory is a user's opt-in to tracking a subcategory. It controls
// which subcategories appear in that user's transaction entry pickers.
//
// Removing a selection does not touch the subcategory itself or any
// transactions that reference it. Historical transactions keep their
// subcategory after opt-out.
type UserSubCategory struct {
	DefaultModel
	User          User        `json:"-"`
	UserID        uuid.UUID   `gorm:"uniqueIndex:user_sub_category_user_id_sub_category_id"`
	SubCategory   SubCategory `json:"-"`
	SubCategoryID uuid.UUID   `gorm:"uniqueIndex:user_sub_category_user_id_sub_category_id"`
}
