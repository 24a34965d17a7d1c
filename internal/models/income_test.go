package models_test

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeNameUnique() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	_ = suite.createTestIncome(models.Income{
		UserID:    user.ID,
		AccountID: account.ID,
		Name:      "Salary",
	})

	err := suite.db.Create(&models.Income{
		UserID:    user.ID,
		AccountID: account.ID,
		Name:      "Salary",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrIncomeNameNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
}

func (suite *TestSuiteStandard) TestIncomeRecurrenceInvalid() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	recurrence := models.Recurrence("Fortnightly")
	err := suite.db.Create(&models.Income{
		UserID:     user.ID,
		AccountID:  account.ID,
		Name:       "Salary",
		Recurrent:  true,
		Recurrence: &recurrence,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRecurrenceInvalid)
	assert.ErrorIs(suite.T(), err, models.ErrInvalid)
}

func (suite *TestSuiteStandard) TestIncomeAccountRequired() {
	user := suite.createTestUser(models.User{})

	err := suite.db.Create(&models.Income{
		UserID: user.ID,
		Name:   "Salary",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferenceInvalid)
}
