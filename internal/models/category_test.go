package models_test

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Housing"})

	err := suite.db.Create(&models.Category{
		Name: "Housing",
		Type: models.CategoryTypeWant,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
}

func (suite *TestSuiteStandard) TestCategoryTypeInvalid() {
	err := suite.db.Create(&models.Category{
		Name: "Housing",
		Type: "Luxury",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTypeInvalid)
	assert.ErrorIs(suite.T(), err, models.ErrInvalid)
}

func (suite *TestSuiteStandard) TestSubCategoryNameUniquePerCategory() {
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestSubCategory(models.SubCategory{
		CategoryID: category.ID,
		Name:       "Rent",
	})

	err := suite.db.Create(&models.SubCategory{
		CategoryID: category.ID,
		Name:       "Rent",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSubCategoryNameNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
}

func (suite *TestSuiteStandard) TestSubCategoryNameReusableAcrossCategories() {
	first := suite.createTestCategory(models.Category{})
	second := suite.createTestCategory(models.Category{})

	_ = suite.createTestSubCategory(models.SubCategory{
		CategoryID: first.ID,
		Name:       "Other",
	})

	// The same name under a different parent category is fine
	err := suite.db.Create(&models.SubCategory{
		CategoryID: second.ID,
		Name:       "Other",
	}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSubCategoryCategoryRequired() {
	err := suite.db.Create(&models.SubCategory{Name: "Rent"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferenceInvalid)
}
