package models_test

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserSubCategoryUnique() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	_ = suite.createTestUserSubCategory(models.UserSubCategory{
		UserID:        user.ID,
		SubCategoryID: subCategory.ID,
	})

	err := suite.db.Create(&models.UserSubCategory{
		UserID:        user.ID,
		SubCategoryID: subCategory.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUserSubCategoryNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
}

func (suite *TestSuiteStandard) TestUserSubCategorySharedSubCategory() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	_ = suite.createTestUserSubCategory(models.UserSubCategory{
		UserID:        alice.ID,
		SubCategoryID: subCategory.ID,
	})

	// Multiple users can track the same subcategory
	err := suite.db.Create(&models.UserSubCategory{
		UserID:        bob.ID,
		SubCategoryID: subCategory.ID,
	}).Error
	assert.Nil(suite.T(), err)
}
