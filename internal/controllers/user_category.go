package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
)

// UserCategoryEditable contains the fields of a subcategory opt-in.
type UserCategoryEditable struct {
	UserID        uuid.UUID `json:"userId"`
	SubCategoryID uuid.UUID `json:"subCategoryId"`
}

type userCategoryController struct {
	ledger *ledger.Ledger
}

// RegisterUserCategoryRoutes registers the routes for subcategory
// selections with the RouterGroup that is passed.
func RegisterUserCategoryRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := userCategoryController{ledger: l}

	r.POST("", c.create)
	r.GET("", c.list)
	r.DELETE("/:id", c.delete)
}

func (uc userCategoryController) create(c *gin.Context) {
	var editable UserCategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	selection, err := uc.ledger.AddUserCategory(editable.UserID, editable.SubCategoryID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, selection)
}

func (uc userCategoryController) list(c *gin.Context) {
	var filter struct {
		User string `form:"user"`
	}
	_ = c.Bind(&filter)

	userID, err := uuid.Parse(filter.User)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQuery.Error()})
		return
	}

	selections, err := uc.ledger.UserCategories(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, selections)
}

func (uc userCategoryController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := uc.ledger.RemoveUserCategory(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no user sub category matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
