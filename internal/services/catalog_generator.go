package services

import (
	"fmt"
	"math/rand"
	"time"

	"eyesonplants/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// CatalogGeneratorInterface generates realistic catalog data for development
// environments.
type CatalogGeneratorInterface interface {
	GenerateProducts(sellerID int64, count int) []*models.Product
	GenerateCareGuides(count int) []*models.CareGuide
	GenerateDiseases(userID int64, count int) []*models.Disease
}

type catalogGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewCatalogGenerator creates a new catalog generator
func NewCatalogGenerator() CatalogGeneratorInterface {
	seed := time.Now().UnixNano()
	return &catalogGenerator{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

var generatorCategories = []models.ProductCategory{
	models.CategoryIndoorPlant,
	models.CategoryOutdoorPlant,
	models.CategorySeed,
	models.CategoryFertilizer,
	models.CategoryTool,
	models.CategoryPot,
}

var plantNames = []string{
	"Monstera Deliciosa", "Snake Plant", "Fiddle Leaf Fig", "Pothos",
	"Peace Lily", "Spider Plant", "ZZ Plant", "Rubber Plant",
	"Aloe Vera", "Boston Fern", "Calathea Orbifolia", "English Ivy",
	"Jade Plant", "Philodendron Birkin", "String of Pearls", "Bird of Paradise",
	"Chinese Evergreen", "Parlor Palm", "Prayer Plant", "Pilea Peperomioides",
}

var diseaseNames = []string{
	"Powdery Mildew", "Root Rot", "Leaf Spot", "Early Blight",
	"Late Blight", "Downy Mildew", "Rust", "Anthracnose",
	"Botrytis Blight", "Fusarium Wilt", "Bacterial Canker", "Mosaic Virus",
}

// GenerateProducts creates realistic marketplace listings for a seller
func (g *catalogGenerator) GenerateProducts(sellerID int64, count int) []*models.Product {
	products := make([]*models.Product, 0, count)

	for i := 0; i < count; i++ {
		category := generatorCategories[g.rng.Intn(len(generatorCategories))]

		products = append(products, &models.Product{
			UserID:        sellerID,
			ProductName:   g.productName(category),
			Category:      category,
			Price:         g.price(category),
			Stock:         g.rng.Intn(50) + 1,
			Description:   g.faker.Sentence(12),
			SellerAddress: g.faker.Address().Address,
			SellerPhone:   g.phone(),
			OnSale:        g.rng.Intn(5) == 0,
		})
	}

	return products
}

// GenerateCareGuides creates care guide entries for common houseplants
func (g *catalogGenerator) GenerateCareGuides(count int) []*models.CareGuide {
	levels := []models.CareLevel{models.CareEasy, models.CareModerate, models.CareHard}

	guides := make([]*models.CareGuide, 0, count)
	for i := 0; i < count; i++ {
		guides = append(guides, &models.CareGuide{
			PlantName:        plantNames[g.rng.Intn(len(plantNames))],
			InterestingStory: g.faker.Paragraph(1, 3, 10, " "),
			CareLevel:        levels[g.rng.Intn(len(levels))],
			PlantDescription: g.faker.Paragraph(1, 2, 12, " "),
		})
	}

	return guides
}

// GenerateDiseases creates disease reference entries
func (g *catalogGenerator) GenerateDiseases(userID int64, count int) []*models.Disease {
	if count > len(diseaseNames) {
		count = len(diseaseNames)
	}

	diseases := make([]*models.Disease, 0, count)
	for i := 0; i < count; i++ {
		diseases = append(diseases, &models.Disease{
			UserID:            userID,
			DiseaseName:       diseaseNames[i],
			AffectedParts:     "Leaves, stems",
			Symptoms:          g.faker.Sentence(10),
			Treatment:         g.faker.Sentence(10),
			RecommendedAction: g.faker.Sentence(8),
		})
	}

	return diseases
}

func (g *catalogGenerator) productName(category models.ProductCategory) string {
	plant := plantNames[g.rng.Intn(len(plantNames))]

	var name string
	switch category {
	case models.CategoryIndoorPlant, models.CategoryOutdoorPlant:
		name = plant
	case models.CategorySeed:
		name = plant + " Seeds"
	case models.CategoryFertilizer:
		name = "Plant Food " + g.faker.Word()
	case models.CategoryTool:
		name = g.faker.Word() + " Pruner"
	case models.CategoryPot:
		name = fmt.Sprintf("%dcm Ceramic Pot", g.rng.Intn(30)+10)
	}

	if len(name) > 50 {
		name = name[:50]
	}
	return name
}

func (g *catalogGenerator) price(category models.ProductCategory) decimal.Decimal {
	var cents int64
	switch category {
	case models.CategorySeed:
		cents = int64(g.rng.Intn(900) + 100)
	case models.CategoryFertilizer, models.CategoryTool, models.CategoryPot:
		cents = int64(g.rng.Intn(4000) + 500)
	default:
		cents = int64(g.rng.Intn(9000) + 1000)
	}
	return decimal.New(cents, -2)
}

func (g *catalogGenerator) phone() string {
	digits := make([]byte, 10)
	for i := range digits {
		digits[i] = byte('0' + g.rng.Intn(10))
	}
	return "+1" + string(digits)
}
