package models_test

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := suite.createTestUser(models.User{Username: " alice\t"})

	assert.Equal(suite.T(), "alice", user.Username)
}

func (suite *TestSuiteStandard) TestUserUsernameTaken() {
	_ = suite.createTestUser(models.User{Username: "alice"})

	var count int64
	suite.db.Model(&models.User{}).Count(&count)

	err := suite.db.Create(&models.User{Username: "alice"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUsernameTaken)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)

	var after int64
	suite.db.Model(&models.User{}).Count(&after)
	assert.Equal(suite.T(), count, after)
}
