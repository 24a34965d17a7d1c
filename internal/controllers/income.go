package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// IncomeEditable contains the fields a caller can set on an income source.
type IncomeEditable struct {
	UserID          uuid.UUID          `json:"userId"`
	AccountID       uuid.UUID          `json:"accountId"`
	Name            string             `json:"name" example:"Salary"`
	RecurrenceValue int64              `json:"recurrenceValue" example:"250000"` // In minor units
	Currency        models.Currency    `json:"currency" example:"EUR"`
	Recurrent       bool               `json:"recurrent" example:"true"`
	IncomeDate      *time.Time         `json:"incomeDate"`
	Recurrence      *models.Recurrence `json:"recurrence" example:"Monthly"`
}

func (e IncomeEditable) model() models.Income {
	return models.Income{
		UserID:          e.UserID,
		AccountID:       e.AccountID,
		Name:            e.Name,
		RecurrenceValue: e.RecurrenceValue,
		Currency:        e.Currency,
		Recurrent:       e.Recurrent,
		IncomeDate:      e.IncomeDate,
		Recurrence:      e.Recurrence,
	}
}

type incomeController struct {
	ledger *ledger.Ledger
}

// RegisterIncomeRoutes registers the routes for income sources with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := incomeController{ledger: l}

	r.POST("", c.create)
	r.GET("", c.list)
	r.GET("/:id", c.get)
	r.PUT("/:id", c.update)
	r.DELETE("/:id", c.delete)
}

func (ic incomeController) create(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	income, err := ic.ledger.CreateIncome(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, income)
}

func (ic incomeController) list(c *gin.Context) {
	var filter struct {
		User    string `form:"user"`
		Account string `form:"account"`
		Name    string `form:"name"`
	}
	_ = c.Bind(&filter)

	if filter.Name != "" {
		income, err := ic.ledger.IncomeByName(filter.Name)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, []models.Income{income})
		return
	}

	if filter.Account != "" {
		accountID, err := uuid.Parse(filter.Account)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		incomes, err := ic.ledger.IncomesByAccount(accountID)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, incomes)
		return
	}

	userID, err := uuid.Parse(filter.User)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQuery.Error()})
		return
	}

	incomes, err := ic.ledger.IncomesByUser(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, incomes)
}

func (ic incomeController) get(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	income, err := ic.ledger.IncomeByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, income)
}

func (ic incomeController) update(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	existing, err := ic.ledger.IncomeByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	income := editable.model()
	income.DefaultModel = existing.DefaultModel

	income, err = ic.ledger.UpdateIncome(income)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, income)
}

func (ic incomeController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := ic.ledger.DeleteIncome(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no income matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
