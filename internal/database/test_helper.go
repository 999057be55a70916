package database

import (
	"fmt"
	"testing"

	"eyesonplants/internal/config"
	"eyesonplants/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "user_" + email,
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleUser,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestFarmer(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "farmer_" + email,
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleFarmer,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test farmer: %v", err)
	}

	return user
}

func CreateTestAdminUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "admin_" + email,
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleAdmin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test admin user: %v", err)
	}

	return user
}

func CreateTestPlant(t *testing.T, db *DB, userID int64, name string) *models.Plant {
	t.Helper()

	plant := &models.Plant{
		UserID:     userID,
		PlantName:  name,
		Type:       "Herb",
		PlantStage: models.StageSeedling,
		GrowthTime: 30,
	}

	if err := db.Create(plant).Error; err != nil {
		t.Fatalf("failed to create test plant: %v", err)
	}

	return plant
}

func CreateTestProduct(t *testing.T, db *DB, sellerID int64, name string, price string, stock int) *models.Product {
	t.Helper()

	priceDec, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("invalid test price %q: %v", price, err)
	}

	product := &models.Product{
		UserID:        sellerID,
		ProductName:   name,
		Category:      models.CategoryIndoorPlant,
		Price:         priceDec,
		Stock:         stock,
		SellerAddress: "12 Greenhouse Lane",
		SellerPhone:   "+15550100200",
	}

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}

	return product
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: SetupTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"order_items",
		"orders",
		"cart_items",
		"carts",
		"reminders",
		"device_tokens",
		"diseases",
		"care_guides",
		"products",
		"plants",
		"audit_logs",
		"users",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
