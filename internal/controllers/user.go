package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type userController struct {
	ledger *ledger.Ledger
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := userController{ledger: l}

	r.GET("", c.list)
	r.GET("/:id", c.get)
	r.DELETE("/:id", c.delete)
}

// RegisterAuthRoutes registers registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	c := userController{ledger: l}

	r.POST("/register", c.register)
	r.POST("/login", c.login)
}

func (uc userController) register(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	user, err := uc.ledger.CreateUser(models.User{
		Username: credentials.Username,
		Password: hash,
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (uc userController) login(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	user, err := uc.ledger.UserByUsername(credentials.Username)
	if err != nil || !auth.CheckPassword(user.Password, credentials.Password) {
		// Do not leak whether the username exists
		c.JSON(http.StatusUnauthorized, httpError{Error: "username or password is incorrect"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc userController) list(c *gin.Context) {
	users, err := uc.ledger.Users()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (uc userController) get(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	user, err := uc.ledger.UserByID(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc userController) delete(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	count, err := uc.ledger.DeleteUser(id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, httpError{Error: "there is no user matching your query"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
