package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
)

var errMonthNotSetInQuery = errors.New("the month query parameter must be set to a YYYY-MM value")

type monthController struct {
	ledger *ledger.Ledger
}

// RegisterMonthRoutes registers the route for monthly summaries with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := monthController{ledger: l}

	r.GET("", c.get)
}

func (mc monthController) get(c *gin.Context) {
	var filter struct {
		User  string `form:"user"`
		Month string `form:"month"`
	}
	_ = c.Bind(&filter)

	userID, err := uuid.Parse(filter.User)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQuery.Error()})
		return
	}

	month, err := types.ParseMonth(filter.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthNotSetInQuery.Error()})
		return
	}

	summary, err := mc.ledger.MonthSummary(userID, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
