package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubCategory is a child of exactly one Category. Its name is unique within
// the parent category.
type SubCategory struct {
	DefaultModel
	Category        Category  `json:"-"`
	CategoryID      uuid.UUID `gorm:"uniqueIndex:sub_category_category_id_name"`
	Name            string    `gorm:"uniqueIndex:sub_category_category_id_name"`
	Recurrent       bool
	Recurrence      *Recurrence
	Currency        Currency
	RecurrenceValue int64 // In minor units of Currency
}

// BeforeSave normalizes strings and validates the enum members.
func (s *SubCategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.Recurrence != nil && !s.Recurrence.valid() {
		return ErrRecurrenceInvalid
	}

	currency, err := s.Currency.validate()
	if err != nil {
		return err
	}
	s.Currency = currency

	return nil
}
