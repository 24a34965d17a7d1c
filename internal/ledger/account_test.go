package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateAccount() {
	user := suite.createTestUser(models.User{Username: "alice"})

	account, err := suite.ledger.CreateAccount(models.Account{
		UserID: user.ID,
		Name:   "Checking",
		Type:   models.AccountTypeBank,
	})
	assert.Nil(suite.T(), err)
	assert.Zero(suite.T(), account.Balance)
	assert.Equal(suite.T(), models.DefaultCurrency, account.Currency)
}

func (suite *TestSuiteStandard) TestCreateAccountUnknownUser() {
	_, err := suite.ledger.CreateAccount(models.Account{
		UserID: uuid.New(),
		Name:   "Checking",
		Type:   models.AccountTypeBank,
	})
	assert.ErrorIs(suite.T(), err, models.ErrNoSuchUser)
	assert.ErrorIs(suite.T(), err, models.ErrDoesNotExist)

	// The failed create leaves no partial row behind
	accounts, readErr := suite.ledger.Accounts()
	assert.Nil(suite.T(), readErr)
	assert.Len(suite.T(), accounts, 0)
}

func (suite *TestSuiteStandard) TestCreateAccountDuplicateName() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	_ = suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking"})

	// Account names are unique across the whole instance, also for
	// accounts of other users
	_, err := suite.ledger.CreateAccount(models.Account{
		UserID: other.ID,
		Name:   "Checking",
		Type:   models.AccountTypeBank,
	})
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	accounts, err := suite.ledger.Accounts()
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), accounts, 1)
}

func (suite *TestSuiteStandard) TestAccountByName() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking"})

	dbAccount, err := suite.ledger.AccountByName("Checking")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), account.ID, dbAccount.ID)

	// An empty name must not fall through to an unfiltered query and
	// return an arbitrary row
	_, err = suite.ledger.AccountByName("")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountsByUser() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})
	_ = suite.createTestAccount(models.Account{UserID: alice.ID})
	_ = suite.createTestAccount(models.Account{UserID: alice.ID})
	_ = suite.createTestAccount(models.Account{UserID: bob.ID})

	accounts, err := suite.ledger.AccountsByUser(alice.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), accounts, 2)

	// An unknown user is a lookup failure, not an empty list
	_, err = suite.ledger.AccountsByUser(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateAccount() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking"})

	account.Name = "Main Checking"
	updated, err := suite.ledger.UpdateAccount(account)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Main Checking", updated.Name)
}

func (suite *TestSuiteStandard) TestDeleteAccount() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})

	count, err := suite.ledger.DeleteAccount(account.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	count, err = suite.ledger.DeleteAccount(account.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteAccountWithTransactions() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID})
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	_ = suite.createTestTransaction(models.Transaction{
		AccountID:     account.ID,
		Type:          models.TransactionTypeExpense,
		Value:         -100,
		SubCategoryID: &subCategory.ID,
	})

	_, err := suite.ledger.DeleteAccount(account.ID)
	assert.ErrorIs(suite.T(), err, models.ErrAccountInUse)

	_, err = suite.ledger.AccountByID(account.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDeleteAccountAsTransferTarget() {
	user := suite.createTestUser(models.User{})
	source := suite.createTestAccount(models.Account{UserID: user.ID})
	target := suite.createTestAccount(models.Account{UserID: user.ID})

	_ = suite.createTestTransaction(models.Transaction{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Value:           -100,
	})

	// Being the target side of a transfer also blocks deletion
	_, err := suite.ledger.DeleteAccount(target.ID)
	assert.ErrorIs(suite.T(), err, models.ErrAccountInUse)
}
