package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGenerator_GenerateProducts(t *testing.T) {
	generator := NewCatalogGenerator()

	products := generator.GenerateProducts(7, 25)

	require.Len(t, products, 25)
	for _, product := range products {
		assert.NoError(t, product.Validate())
		assert.Equal(t, int64(7), product.UserID)
		assert.True(t, product.Category.Valid())
		assert.True(t, product.Price.GreaterThan(decimal.Zero))
		assert.Greater(t, product.Stock, 0)
		assert.NotEmpty(t, product.SellerAddress)
		assert.NotEmpty(t, product.SellerPhone)
	}
}

func TestCatalogGenerator_GenerateCareGuides(t *testing.T) {
	generator := NewCatalogGenerator()

	guides := generator.GenerateCareGuides(10)

	require.Len(t, guides, 10)
	for _, guide := range guides {
		assert.NotEmpty(t, guide.PlantName)
		assert.NotEmpty(t, guide.PlantDescription)
		assert.True(t, guide.CareLevel.Valid())
	}
}

func TestCatalogGenerator_GenerateDiseases(t *testing.T) {
	generator := NewCatalogGenerator()

	diseases := generator.GenerateDiseases(3, 5)

	require.Len(t, diseases, 5)
	seen := make(map[string]bool)
	for _, disease := range diseases {
		assert.Equal(t, int64(3), disease.UserID)
		assert.NotEmpty(t, disease.DiseaseName)
		assert.NotEmpty(t, disease.Symptoms)
		assert.False(t, seen[disease.DiseaseName])
		seen[disease.DiseaseName] = true
	}
}

func TestCatalogGenerator_GenerateDiseases_CapsAtKnownNames(t *testing.T) {
	generator := NewCatalogGenerator()

	diseases := generator.GenerateDiseases(3, 100)

	assert.LessOrEqual(t, len(diseases), 12)
}

func TestCatalogGenerator_ProductNamesStayWithinLimit(t *testing.T) {
	generator := NewCatalogGenerator()

	for _, product := range generator.GenerateProducts(1, 100) {
		assert.LessOrEqual(t, len(product.ProductName), 50)
	}
}
