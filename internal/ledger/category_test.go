package ledger_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	category, err := suite.ledger.CreateCategory(models.Category{
		Name: "Bills",
		Type: models.CategoryTypeNeed,
	})
	assert.Nil(suite.T(), err)

	dbCategory, err := suite.ledger.CategoryByName("Bills")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), category.ID, dbCategory.ID)

	_, err = suite.ledger.CategoryByName("")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	_ = suite.createTestCategory(models.Category{Name: "Bills"})

	_, err := suite.ledger.CreateCategory(models.Category{
		Name: "Bills",
		Type: models.CategoryTypeWant,
	})
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	categories, err := suite.ledger.Categories()
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 1)
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithSubCategories() {
	category := suite.createTestCategory(models.Category{})
	_ = suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	_, err := suite.ledger.DeleteCategory(category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInUse)

	_, err = suite.ledger.CategoryByID(category.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCreateSubCategoryUnknownCategory() {
	_, err := suite.ledger.CreateSubCategory(models.SubCategory{
		CategoryID: uuid.New(),
		Name:       "Rent",
	})
	assert.ErrorIs(suite.T(), err, models.ErrNoSuchCategory)
}

func (suite *TestSuiteStandard) TestSubCategoryByName() {
	category := suite.createTestCategory(models.Category{})
	other := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID, Name: "Rent"})
	_ = suite.createTestSubCategory(models.SubCategory{CategoryID: other.ID, Name: "Rent"})

	// The lookup is scoped to the parent category
	dbSubCategory, err := suite.ledger.SubCategoryByName(category.ID, "Rent")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), subCategory.ID, dbSubCategory.ID)

	_, err = suite.ledger.SubCategoryByName(category.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSubCategoriesByCategory() {
	category := suite.createTestCategory(models.Category{})
	_ = suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})
	_ = suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	subCategories, err := suite.ledger.SubCategoriesByCategory(category.ID)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), subCategories, 2)

	_, err = suite.ledger.SubCategoriesByCategory(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteSubCategory() {
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	count, err := suite.ledger.DeleteSubCategory(subCategory.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	count, err = suite.ledger.DeleteSubCategory(subCategory.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteSubCategoryWithTransactions() {
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

	_, err := suite.ledger.DeleteSubCategory(subCategory.ID)
	assert.ErrorIs(suite.T(), err, models.ErrSubCategoryInUse)
	assert.ErrorIs(suite.T(), err, models.ErrInUse)

	// The subcategory stays fully readable
	_, err = suite.ledger.SubCategoryByID(subCategory.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDeleteSubCategoryWithSelections() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	_, err := suite.ledger.AddUserCategory(user.ID, subCategory.ID)
	assert.Nil(suite.T(), err)

	_, err = suite.ledger.DeleteSubCategory(subCategory.ID)
	assert.ErrorIs(suite.T(), err, models.ErrSubCategoryInUse)
}
