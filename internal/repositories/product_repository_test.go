package repositories

import (
	"testing"

	"eyesonplants/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ProductRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ProductRepositoryInterface
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.User{}, &models.Product{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewProductRepository(db)
}

func (s *ProductRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestProductRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}

func (s *ProductRepositoryTestSuite) createTestProduct(name string, category models.ProductCategory, price string, stock int) *models.Product {
	product := &models.Product{
		UserID:        1,
		ProductName:   name,
		Category:      category,
		Price:         decimal.RequireFromString(price),
		Stock:         stock,
		SellerAddress: "12 Greenhouse Lane",
		SellerPhone:   "+15550100200",
	}
	require.NoError(s.T(), s.repo.Create(product))
	return product
}

func (s *ProductRepositoryTestSuite) TestDecrementStock_Sufficient() {
	product := s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 10)

	require.NoError(s.T(), s.repo.DecrementStock(product.ID, 4))

	updated, err := s.repo.GetByID(product.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 6, updated.Stock)
}

func (s *ProductRepositoryTestSuite) TestDecrementStock_Insufficient() {
	product := s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 3)

	err := s.repo.DecrementStock(product.ID, 5)
	assert.ErrorIs(s.T(), err, ErrInsufficientStock)

	updated, getErr := s.repo.GetByID(product.ID)
	require.NoError(s.T(), getErr)
	assert.Equal(s.T(), 3, updated.Stock)
}

func (s *ProductRepositoryTestSuite) TestDecrementStock_ExactRemaining() {
	product := s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 5)

	require.NoError(s.T(), s.repo.DecrementStock(product.ID, 5))

	updated, err := s.repo.GetByID(product.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, updated.Stock)
}

func (s *ProductRepositoryTestSuite) TestDecrementStock_MissingProduct() {
	err := s.repo.DecrementStock(9999, 1)
	assert.ErrorIs(s.T(), err, ErrProductNotFound)
}

func (s *ProductRepositoryTestSuite) TestIncrementStock_RestoresCancelledQuantity() {
	product := s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 2)

	require.NoError(s.T(), s.repo.IncrementStock(product.ID, 3))

	updated, err := s.repo.GetByID(product.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 5, updated.Stock)
}

func (s *ProductRepositoryTestSuite) TestSearch_ByCategory() {
	s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 10)
	s.createTestProduct("Tomato Seeds", models.CategorySeed, "2.99", 100)

	results, total, err := s.repo.Search(models.ProductSearchFilters{
		Category: models.CategorySeed,
	}, 0, 20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "Tomato Seeds", results[0].ProductName)
}

func (s *ProductRepositoryTestSuite) TestSearch_ByName() {
	s.createTestProduct("Monstera Deliciosa", models.CategoryIndoorPlant, "19.99", 10)
	s.createTestProduct("Snake Plant", models.CategoryIndoorPlant, "14.99", 10)

	results, total, err := s.repo.Search(models.ProductSearchFilters{
		Query: "monstera",
	}, 0, 20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "Monstera Deliciosa", results[0].ProductName)
}

func (s *ProductRepositoryTestSuite) TestSearch_PriceRange() {
	s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 10)
	s.createTestProduct("Fiddle Leaf Fig", models.CategoryIndoorPlant, "49.99", 10)
	s.createTestProduct("Pothos", models.CategoryIndoorPlant, "9.99", 10)

	min := decimal.RequireFromString("10.00")
	max := decimal.RequireFromString("30.00")
	results, total, err := s.repo.Search(models.ProductSearchFilters{
		MinPrice: &min,
		MaxPrice: &max,
	}, 0, 20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "Monstera", results[0].ProductName)
}

func (s *ProductRepositoryTestSuite) TestSearch_InStockOnly() {
	s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 0)
	s.createTestProduct("Pothos", models.CategoryIndoorPlant, "9.99", 4)

	results, total, err := s.repo.Search(models.ProductSearchFilters{
		InStock: true,
	}, 0, 20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "Pothos", results[0].ProductName)
}

func (s *ProductRepositoryTestSuite) TestGetBySellerID() {
	s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 10)

	other := &models.Product{
		UserID:        2,
		ProductName:   "Pothos",
		Category:      models.CategoryIndoorPlant,
		Price:         decimal.RequireFromString("9.99"),
		Stock:         4,
		SellerAddress: "3 Nursery Road",
		SellerPhone:   "+15550100300",
	}
	require.NoError(s.T(), s.repo.Create(other))

	results, total, err := s.repo.GetBySellerID(1, 0, 20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "Monstera", results[0].ProductName)
}

func (s *ProductRepositoryTestSuite) TestDelete_SoftDelete() {
	product := s.createTestProduct("Monstera", models.CategoryIndoorPlant, "19.99", 10)

	require.NoError(s.T(), s.repo.Delete(product.ID))

	_, err := s.repo.GetByID(product.ID)
	assert.ErrorIs(s.T(), err, ErrProductNotFound)
}
