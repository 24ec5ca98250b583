package database

import (
	"testing"
	"time"

	"txn-search/internal/config"
	"txn-search/internal/models"

	"github.com/google/uuid"
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

// CreateTestTransaction inserts a transaction with sensible defaults,
// overridable through the mutate callback.
func CreateTestTransaction(t *testing.T, db *DB, accountID uuid.UUID, mutate func(*models.Transaction)) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AccountID:          accountID,
		Date:               time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Description:        "Debit Card Purchase at Starbucks - Seattle",
		Amount:             decimal.New(-575, -2),
		MerchantName:       "Starbucks",
		CategoryID:         models.CategoryCoffeeTea,
		CategoryConfidence: 0.95,
		CategorySource:     models.CategorySourceMerchant,
	}

	if mutate != nil {
		mutate(txn)
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup transactions table: %v", err)
	}
}
