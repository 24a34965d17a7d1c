package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType decides how a transaction affects account balances and
// which resource it must be linked to.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "Income"
	TransactionTypeExpense  TransactionType = "Expense"
	TransactionTypeTransfer TransactionType = "Transfer"
)

func (t TransactionType) valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense || t == TransactionTypeTransfer
}

// Transaction is a single ledger entry against an account.
//
// Value is the signed effect on the source account in integer minor units:
// positive values credit the account, negative values debit it. A transfer
// stores the (negative) deduction from the source account and implies the
// opposite movement on the target account.
//
// Every income or expense transaction is linked to exactly one reason,
// either a subcategory or an income source. Transfers carry neither and
// reference the target account instead.
type Transaction struct {
	DefaultModel
	Account         Account   `json:"-"`
	AccountID       uuid.UUID `gorm:"check:source_target_different,account_id != target_account_id"`
	TargetAccount   *Account  `json:"-"`
	TargetAccountID *uuid.UUID
	Type            TransactionType
	Value           int64 // In minor units of Currency, sign encodes direction
	Currency        Currency
	Date            time.Time // Time of day is currently only used for sorting
	Description     string
	SubCategory     *SubCategory `json:"-"`
	SubCategoryID   *uuid.UUID   `gorm:"check:transaction_link_exclusive,NOT (sub_category_id IS NOT NULL AND income_id IS NOT NULL)"`
	Income          *Income      `json:"-"`
	IncomeID        *uuid.UUID
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - validates the transaction type and its required links
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)

	// Ensure that optional references are nil and not pointers to a nil
	// UUID when they are unset
	if t.SubCategoryID != nil && *t.SubCategoryID == uuid.Nil {
		t.SubCategoryID = nil
	}
	if t.IncomeID != nil && *t.IncomeID == uuid.Nil {
		t.IncomeID = nil
	}
	if t.TargetAccountID != nil && *t.TargetAccountID == uuid.Nil {
		t.TargetAccountID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Type.valid() {
		return ErrTransactionTypeInvalid
	}

	currency, err := t.Currency.validate()
	if err != nil {
		return err
	}
	t.Currency = currency

	if t.SubCategoryID != nil && t.IncomeID != nil {
		return ErrBothLinksSet
	}

	switch t.Type {
	case TransactionTypeIncome:
		if t.IncomeID == nil || t.SubCategoryID != nil {
			return ErrIncomeLinkRequired
		}
	case TransactionTypeExpense:
		if t.SubCategoryID == nil || t.IncomeID != nil {
			return ErrExpenseLinkRequired
		}
	case TransactionTypeTransfer:
		if t.SubCategoryID != nil || t.IncomeID != nil {
			return ErrTransferLinkForbidden
		}
		if t.TargetAccountID == nil {
			return ErrTransferTargetRequired
		}
		if *t.TargetAccountID == t.AccountID {
			return ErrSourceEqualsTarget
		}
	}

	if t.Type != TransactionTypeTransfer && t.TargetAccountID != nil {
		return ErrTargetWithoutTransfer
	}

	return nil
}
