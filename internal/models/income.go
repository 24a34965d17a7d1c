package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recurrence is the interval in which an income or subcategory recurs.
type Recurrence string

const (
	RecurrenceOne     Recurrence = "One"
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
	RecurrenceYearly  Recurrence = "Yearly"
)

func (r Recurrence) valid() bool {
	switch r {
	case RecurrenceOne, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Income is a recurring or one-off income source tied to a target account.
type Income struct {
	DefaultModel
	User            User `json:"-"`
	UserID          uuid.UUID
	Account         Account `json:"-"`
	AccountID       uuid.UUID
	Name            string `gorm:"uniqueIndex"`
	RecurrenceValue int64  // In minor units of Currency
	Currency        Currency
	Recurrent       bool
	IncomeDate      *time.Time
	Recurrence      *Recurrence
}

// BeforeSave normalizes strings and validates the enum members.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)

	if i.Recurrence != nil && !i.Recurrence.valid() {
		return ErrRecurrenceInvalid
	}

	currency, err := i.Currency.validate()
	if err != nil {
		return err
	}
	i.Currency = currency

	return nil
}
