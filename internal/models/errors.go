package models

import (
	"errors"
	"fmt"
)

// Error classes. Every domain error wraps exactly one of these, so callers
// can classify any failure with errors.Is without inspecting messages.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAlreadyExists    = errors.New("already exists")
	ErrDoesNotExist     = errors.New("does not exist")
	ErrInvalid          = errors.New("is not valid")
	ErrInUse            = errors.New("is still referenced")
)

// Uniqueness violations.
var (
	ErrUsernameTaken            = fmt.Errorf("a user with this username %w", ErrAlreadyExists)
	ErrAccountNameNotUnique     = fmt.Errorf("an account with this name %w", ErrAlreadyExists)
	ErrIncomeNameNotUnique      = fmt.Errorf("an income source with this name %w", ErrAlreadyExists)
	ErrCategoryNameNotUnique    = fmt.Errorf("a category with this name %w", ErrAlreadyExists)
	ErrSubCategoryNameNotUnique = fmt.Errorf("a subcategory with this name %w for this category", ErrAlreadyExists)
	ErrUserSubCategoryNotUnique = fmt.Errorf("a selection for this user and subcategory %w", ErrAlreadyExists)
)

// Referential violations. These are returned when a resource references a
// parent that cannot be found.
var (
	ErrNoSuchUser          = fmt.Errorf("the referenced user %w", ErrDoesNotExist)
	ErrNoSuchAccount       = fmt.Errorf("the referenced account %w", ErrDoesNotExist)
	ErrNoSuchTargetAccount = fmt.Errorf("the referenced target account %w", ErrDoesNotExist)
	ErrNoSuchCategory      = fmt.Errorf("the referenced category %w", ErrDoesNotExist)
	ErrNoSuchSubCategory   = fmt.Errorf("the referenced subcategory %w", ErrDoesNotExist)
	ErrNoSuchIncome        = fmt.Errorf("the referenced income source %w", ErrDoesNotExist)
	ErrReferenceInvalid    = fmt.Errorf("a referenced resource %w", ErrDoesNotExist)
)

// Constraint violations.
var (
	ErrAccountTypeInvalid     = fmt.Errorf("the account type %w", ErrInvalid)
	ErrRecurrenceInvalid      = fmt.Errorf("the recurrence %w", ErrInvalid)
	ErrCategoryTypeInvalid    = fmt.Errorf("the category type %w", ErrInvalid)
	ErrTransactionTypeInvalid = fmt.Errorf("the transaction type %w", ErrInvalid)
	ErrCurrencyInvalid        = fmt.Errorf("the currency %w: it must be an ISO 4217 code", ErrInvalid)

	ErrBothLinksSet           = fmt.Errorf("the transaction %w: it must reference either a subcategory or an income source, never both", ErrInvalid)
	ErrIncomeLinkRequired     = fmt.Errorf("the transaction %w: income transactions must reference an income source and no subcategory", ErrInvalid)
	ErrExpenseLinkRequired    = fmt.Errorf("the transaction %w: expense transactions must reference a subcategory and no income source", ErrInvalid)
	ErrTransferLinkForbidden  = fmt.Errorf("the transaction %w: transfers must not reference a subcategory or an income source", ErrInvalid)
	ErrTransferTargetRequired = fmt.Errorf("the transaction %w: transfers must reference a target account", ErrInvalid)
	ErrTargetWithoutTransfer  = fmt.Errorf("the transaction %w: only transfers may reference a target account", ErrInvalid)
	ErrSourceEqualsTarget     = fmt.Errorf("the transaction %w: the source and target account must be different", ErrInvalid)
)

// Deletions blocked by dependent rows.
var (
	ErrUserInUse        = fmt.Errorf("the user %w by accounts, income sources or subcategory selections", ErrInUse)
	ErrAccountInUse     = fmt.Errorf("the account %w by transactions or income sources", ErrInUse)
	ErrCategoryInUse    = fmt.Errorf("the category %w by subcategories", ErrInUse)
	ErrSubCategoryInUse = fmt.Errorf("the subcategory %w by user selections or transactions", ErrInUse)
	ErrIncomeInUse      = fmt.Errorf("the income source %w by transactions", ErrInUse)
)
