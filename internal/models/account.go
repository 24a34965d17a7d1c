package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeBank AccountType = "Bank"
	AccountTypeCard AccountType = "Card"
	AccountTypeCash AccountType = "Cash"
)

func (t AccountType) valid() bool {
	return t == AccountTypeBank || t == AccountTypeCard || t == AccountTypeCash
}

// Account represents an asset account, e.g. a bank account.
//
// Balance is the persisted running total in integer minor units. It is set
// by the caller at creation time and from then on only mutated by the
// ledger together with the transactions that affect it.
type Account struct {
	DefaultModel
	User     User `json:"-"`
	UserID   uuid.UUID
	Name     string `gorm:"uniqueIndex"`
	Type     AccountType
	Currency Currency
	Balance  int64 // In minor units of Currency

	// Optional credit card settings
	CreditLimit  *int64
	PaymentDay   *int
	InterestRate *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CreditMethod *string
}

// BeforeSave normalizes strings and validates the enum members.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if !a.Type.valid() {
		return ErrAccountTypeInvalid
	}

	currency, err := a.Currency.validate()
	if err != nil {
		return err
	}
	a.Currency = currency

	return nil
}

// Transactions returns all transactions that affect this account, as source
// or as transfer target.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{AccountID: a.ID}).
		Or("target_account_id = ?", a.ID).
		Find(&transactions)
	return transactions
}
