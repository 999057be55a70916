package database

import (
	"errors"
	"testing"

	"eyesonplants/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetupTestDB_MigratesAllModels(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{"users", "plants", "products", "care_guides", "carts", "cart_items", "orders", "order_items", "diseases", "reminders", "device_tokens", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck())
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		user := &models.User{
			Username:     "gardener",
			Email:        "gardener@example.com",
			PasswordHash: "hash",
			Role:         models.RoleUser,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdminUser_Idempotent(t *testing.T) {
	db := SetupTestDB(t)

	first, err := db.SeedAdminUser("admin", "admin@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := db.SeedAdminUser("admin", "admin@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTestDB_CleanupEmptiesTables(t *testing.T) {
	tdb := NewTestDB(t)

	farmer := CreateTestFarmer(t, tdb.DB, "farmer@example.com")
	CreateTestProduct(t, tdb.DB, farmer.ID, "Monstera", "19.99", 10)
	user := CreateTestUser(t, tdb.DB, "user@example.com")
	CreateTestPlant(t, tdb.DB, user.ID, "Basil")
	CreateTestAdminUser(t, tdb.DB, "admin@example.com")

	tdb.Cleanup()

	for _, model := range []interface{}{&models.User{}, &models.Product{}, &models.Plant{}} {
		var count int64
		require.NoError(t, tdb.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
