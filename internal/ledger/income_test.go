package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateIncome() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	recurrence := models.RecurrenceMonthly
	income, err := suite.ledger.CreateIncome(models.Income{
		UserID:          user.ID,
		AccountID:       account.ID,
		Name:            "Salary",
		RecurrenceValue: 250000,
		Recurrent:       true,
		Recurrence:      &recurrence,
	})
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultCurrency, income.Currency)

	dbIncome, err := suite.ledger.IncomeByName("Salary")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), income.ID, dbIncome.ID)

	_, err = suite.ledger.IncomeByName("")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateIncomeUnknownAccount() {
	user := suite.createTestUser(models.User{})

	_, err := suite.ledger.CreateIncome(models.Income{
		UserID:    user.ID,
		AccountID: uuid.New(),
		Name:      "Salary",
	})
	assert.ErrorIs(suite.T(), err, models.ErrNoSuchAccount)

	incomes, readErr := suite.ledger.IncomesByUser(user.ID)
	assert.Nil(suite.T(), readErr)
	assert.Len(suite.T(), incomes, 0)
}

func (suite *TestSuiteStandard) TestIncomesByAccount() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})
	other := suite.createTestAccount(models.Account{UserID: user.ID})
	_ = suite.createTestIncome(models.Income{UserID: user.ID, AccountID: account.ID})
	_ = suite.createTestIncome(models.Income{UserID: user.ID, AccountID: other.ID})

	incomes, err := suite.ledger.IncomesByAccount(account.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), incomes, 1)

	_, err = suite.ledger.IncomesByAccount(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateIncome() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})
	income := suite.createTestIncome(models.Income{
		UserID:          user.ID,
		AccountID:       account.ID,
		RecurrenceValue: 250000,
	})

	income.RecurrenceValue = 260000
	updated, err := suite.ledger.UpdateIncome(income)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(260000), updated.RecurrenceValue)
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})
	income := suite.createTestIncome(models.Income{UserID: user.ID, AccountID: account.ID})

	count, err := suite.ledger.DeleteIncome(income.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	count, err = suite.ledger.DeleteIncome(income.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteIncomeWithTransactions() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})
	income := suite.createTestIncome(models.Income{UserID: user.ID, AccountID: account.ID})

	_ = suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Type:      models.TransactionTypeIncome,
		Value:     250000,
		IncomeID:  &income.ID,
	})

	_, err := suite.ledger.DeleteIncome(income.ID)
	assert.ErrorIs(suite.T(), err, models.ErrIncomeInUse)

	_, err = suite.ledger.IncomeByID(income.ID)
	assert.Nil(suite.T(), err)
}
