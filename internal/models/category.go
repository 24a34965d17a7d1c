package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryType classifies a category by its budgeting role.
type CategoryType string

const (
	CategoryTypeNeed    CategoryType = "Need"
	CategoryTypeWant    CategoryType = "Want"
	CategoryTypeSavings CategoryType = "Savings"
	CategoryTypeDebt    CategoryType = "Debt"
)

func (t CategoryType) valid() bool {
	switch t {
	case CategoryTypeNeed, CategoryTypeWant, CategoryTypeSavings, CategoryTypeDebt:
		return true
	}
	return false
}

// Category is a global taxonomy node. It is not owned by a user.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Type CategoryType
}

// BeforeSave normalizes the name and validates the category type.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Type.valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}
