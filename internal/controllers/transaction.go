package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// TransactionEditable contains the fields a caller can set on a transaction.
//
// Value is the signed effect on the source account: incomes are positive,
// expenses and outgoing transfers are negative.
type TransactionEditable struct {
	AccountID       uuid.UUID              `json:"accountId"`
	TargetAccountID *uuid.UUID             `json:"targetAccountId"`
	Type            models.TransactionType `json:"type" example:"Expense"`
	Value           int64                  `json:"value" example:"-50000"` // In minor units
	Currency        models.Currency        `json:"currency" example:"EUR"`
	Date            time.Time              `json:"date"`
	Description     string                 `json:"description" example:"April rent"`
	SubCategoryID   *uuid.UUID             `json:"subCategoryId"`
	IncomeID        *uuid.UUID             `json:"incomeId"`
}

func (e TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:       e.AccountID,
		TargetAccountID: e.TargetAccountID,
		Type:            e.Type,
		Value:           e.Value,
		Currency:        e.Currency,
		Date:            e.Date,
		Description:     e.Description,
		SubCategoryID:   e.SubCategoryID,
		IncomeID:        e.IncomeID,
	}
}

type transactionController struct {
	ledger *ledger.Ledger
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := transactionController{ledger: l}

	r.POST("", c.create)
	r.GET("", c.list)
	r.GET("/:id", c.get)
	r.PUT("/:id", c.update)
	r.DELETE("/:id", c.delete)
}

func (tc transactionController) create(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := tc.ledger.CreateTransaction(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (tc transactionController) list(c *gin.Context) {
	var filter struct {
		Account string                 `form:"account"`
		User    string                 `form:"user"`
		Pattern string                 `form:"pattern"`
		Type    models.TransactionType `form:"type"`
	}
	_ = c.Bind(&filter)

	transactions, err := tc.fetch(filter.Account, filter.User, filter.Pattern)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if filter.Type != "" {
		if !slices.Contains([]models.TransactionType{
			models.TransactionTypeIncome,
			models.TransactionTypeExpense,
			models.TransactionTypeTransfer,
		}, filter.Type) {
			c.JSON(http.StatusBadRequest, httpError{Error: models.ErrTransactionTypeInvalid.Error()})
			return
		}

		filtered := make([]models.Transaction, 0)
		for _, transaction := range transactions {
			if transaction.Type == filter.Type {
				filtered = append(filtered, transaction)
			}
		}
		transactions = filtered
	}

	c.JSON(http.StatusOK, transactions)
}

// fetch returns the transactions for the account, pattern or user filter,
// in that order of precedence.
func (tc transactionController) fetch(account, user, pattern string) ([]models.Transaction, error) {
	if account != "" {
		accountID, err := uuid.Parse(account)
		if err != nil {
			return nil, httputil.ErrInvalidUUID
		}

		return tc.ledger.TransactionsByAccount(accountID)
	}

	userID, err := uuid.Parse(user)
	if err != nil {
		return nil, httputil.ErrInvalidQuery
	}

	if pattern != "" {
		return tc.ledger.SearchTransactions(userID, pattern)
	}

	return tc.ledger.TransactionsByUser(userID)
}

func (tc transactionController) get(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := tc.ledger.TransactionByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (tc transactionController) update(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	existing, err := tc.ledger.TransactionByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction := editable.model()
	transaction.DefaultModel = existing.DefaultModel

	transaction, err = tc.ledger.UpdateTransaction(transaction)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (tc transactionController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := tc.ledger.DeleteTransaction(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no transaction matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
