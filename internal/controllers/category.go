package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// CategoryEditable contains the fields a caller can set on a category.
type CategoryEditable struct {
	Name string              `json:"name" example:"Bills"`
	Type models.CategoryType `json:"type" example:"Need"`
}

func (e CategoryEditable) model() models.Category {
	return models.Category{
		Name: e.Name,
		Type: e.Type,
	}
}

// SubCategoryEditable contains the fields a caller can set on a subcategory.
type SubCategoryEditable struct {
	CategoryID      uuid.UUID          `json:"categoryId"`
	Name            string             `json:"name" example:"Rent"`
	Recurrent       bool               `json:"recurrent" example:"true"`
	Recurrence      *models.Recurrence `json:"recurrence" example:"Monthly"`
	Currency        models.Currency    `json:"currency" example:"EUR"`
	RecurrenceValue int64              `json:"recurrenceValue" example:"95000"` // In minor units
}

func (e SubCategoryEditable) model() models.SubCategory {
	return models.SubCategory{
		CategoryID:      e.CategoryID,
		Name:            e.Name,
		Recurrent:       e.Recurrent,
		Recurrence:      e.Recurrence,
		Currency:        e.Currency,
		RecurrenceValue: e.RecurrenceValue,
	}
}

type categoryController struct {
	ledger *ledger.Ledger
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := categoryController{ledger: l}

	r.POST("", c.create)
	r.GET("", c.list)
	r.GET("/:id", c.get)
	r.GET("/:id/subcategories", c.subCategories)
	r.PUT("/:id", c.update)
	r.DELETE("/:id", c.delete)
}

// RegisterSubCategoryRoutes registers the routes for subcategories with
// the RouterGroup that is passed.
func RegisterSubCategoryRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := categoryController{ledger: l}

	r.POST("", c.createSubCategory)
	r.GET("/:id", c.getSubCategory)
	r.PUT("/:id", c.updateSubCategory)
	r.DELETE("/:id", c.deleteSubCategory)
}

func (cc categoryController) create(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := cc.ledger.CreateCategory(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (cc categoryController) list(c *gin.Context) {
	var filter struct {
		Name string `form:"name"`
	}
	_ = c.Bind(&filter)

	if filter.Name != "" {
		category, err := cc.ledger.CategoryByName(filter.Name)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, []models.Category{category})
		return
	}

	categories, err := cc.ledger.Categories()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (cc categoryController) get(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := cc.ledger.CategoryByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (cc categoryController) subCategories(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	subCategories, err := cc.ledger.SubCategoriesByCategory(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, subCategories)
}

func (cc categoryController) update(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	existing, err := cc.ledger.CategoryByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category := editable.model()
	category.DefaultModel = existing.DefaultModel

	category, err = cc.ledger.UpdateCategory(category)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (cc categoryController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := cc.ledger.DeleteCategory(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no category matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (cc categoryController) createSubCategory(c *gin.Context) {
	var editable SubCategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	subCategory, err := cc.ledger.CreateSubCategory(editable.model())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, subCategory)
}

func (cc categoryController) getSubCategory(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	subCategory, err := cc.ledger.SubCategoryByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, subCategory)
}

func (cc categoryController) updateSubCategory(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	existing, err := cc.ledger.SubCategoryByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable SubCategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	subCategory := editable.model()
	subCategory.DefaultModel = existing.DefaultModel

	subCategory, err = cc.ledger.UpdateSubCategory(subCategory)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, subCategory)
}

func (cc categoryController) deleteSubCategory(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := cc.ledger.DeleteSubCategory(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no subcategory matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
