package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AccountEditable contains the fields a caller can set on an account.
type AccountEditable struct {
	UserID       uuid.UUID          `json:"userId"`
	Name         string             `json:"name" example:"Checking"`
	Type         models.AccountType `json:"type" example:"Bank"`
	Currency     models.Currency    `json:"currency" example:"EUR"`
	Balance      int64              `json:"balance" example:"217500"` // In minor units
	CreditLimit  *int64             `json:"creditLimit"`
	PaymentDay   *int               `json:"paymentDay"`
	InterestRate *decimal.Decimal   `json:"interestRate"`
	CreditMethod *string            `json:"creditMethod"`
}

func (e AccountEditable) model() models.Account {
	return models.Account{
		UserID:       e.UserID,
		Name:         e.Name,
		Type:         e.Type,
		Currency:     e.Currency,
		Balance:      e.Balance,
		CreditLimit:  e.CreditLimit,
		PaymentDay:   e.PaymentDay,
		InterestRate: e.InterestRate,
		CreditMethod: e.CreditMethod,
	}
}

type accountController struct {
	ledger *ledger.Ledger
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := accountController{ledger: l}

	r.POST("", c.create)
	r.GET("", c.list)
	r.GET("/:id", c.get)
	r.PUT("/:id", c.update)
	r.DELETE("/:id", c.delete)
}

func (ac accountController) create(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	account, err := ac.ledger.CreateAccount(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (ac accountController) list(c *gin.Context) {
	var filter struct {
		User string `form:"user"`
		Name string `form:"name"`
	}
	_ = c.Bind(&filter)

	if filter.Name != "" {
		account, err := ac.ledger.AccountByName(filter.Name)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, []models.Account{account})
		return
	}

	if filter.User != "" {
		userID, err := uuid.Parse(filter.User)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		accounts, err := ac.ledger.AccountsByUser(userID)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, accounts)
		return
	}

	accounts, err := ac.ledger.Accounts()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (ac accountController) get(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	account, err := ac.ledger.AccountByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

func (ac accountController) update(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	existing, err := ac.ledger.AccountByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	account := editable.model()
	account.DefaultModel = existing.DefaultModel

	account, err = ac.ledger.UpdateAccount(account)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

func (ac accountController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := ac.ledger.DeleteAccount(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no account matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
