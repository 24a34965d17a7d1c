package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateUser() {
	user := suite.createTestUser(models.User{Username: "alice"})

	dbUser, err := suite.ledger.UserByID(user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "alice", dbUser.Username)
}

func (suite *TestSuiteStandard) TestCreateUserDuplicateUsername() {
	_ = suite.createTestUser(models.User{Username: "alice"})

	_, err := suite.ledger.CreateUser(models.User{Username: "alice"})
	assert.ErrorIs(suite.T(), err, models.ErrUsernameTaken)

	users, err := suite.ledger.Users()
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), users, 1)
}

func (suite *TestSuiteStandard) TestUserByUsername() {
	_ = suite.createTestUser(models.User{Username: "alice"})

	user, err := suite.ledger.UserByUsername("alice")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "alice", user.Username)

	_, err = suite.ledger.UserByUsername("bob")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// An empty username must not match the first user on the instance
	_, err = suite.ledger.UserByUsername("")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUserByIDNotFoundStable() {
	id := uuid.New()

	// Reading an absent ID twice reports the same condition both times
	_, first := suite.ledger.UserByID(id)
	_, second := suite.ledger.UserByID(id)
	assert.ErrorIs(suite.T(), first, models.ErrResourceNotFound)
	assert.ErrorIs(suite.T(), second, models.ErrResourceNotFound)
	assert.Equal(suite.T(), first.Error(), second.Error())
}

func (suite *TestSuiteStandard) TestUpdateUser() {
	user := suite.createTestUser(models.User{Username: "alice"})

	user.Username = "alice.m"
	updated, err := suite.ledger.UpdateUser(user)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "alice.m", updated.Username)

	dbUser, err := suite.ledger.UserByID(user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "alice.m", dbUser.Username)
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	user := suite.createTestUser(models.User{})

	count, err := suite.ledger.DeleteUser(user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	// Deleting again removes nothing and is not an error
	count, err = suite.ledger.DeleteUser(user.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteUserWithAccounts() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestAccount(models.Account{UserID: user.ID})

	_, err := suite.ledger.DeleteUser(user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrUserInUse)
	assert.ErrorIs(suite.T(), err, models.ErrInUse)

	// The user stays fully readable
	_, err = suite.ledger.UserByID(user.ID)
	assert.Nil(suite.T(), err)
}
