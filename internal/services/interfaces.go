package services

import (
	"context"
	"time"

	"txn-search/internal/dto"
	"txn-search/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SearchServiceInterface defines the natural-language transaction search
// operation and the transaction read glue around it.
type SearchServiceInterface interface {
	// Search interprets the query, merges filters, executes against the
	// store and assembles the response envelope. Interpretation failures
	// degrade to fallback mode; only storage failures return an error.
	Search(ctx context.Context, query string, manual models.ManualFilters, limit, offset int) (*dto.SearchResponse, error)

	GetTransaction(id uuid.UUID) (*dto.TransactionView, error)
}

// SearchMetricsInterface records search and interpreter telemetry.
type SearchMetricsInterface interface {
	ObserveSearch(mode string, duration time.Duration)
	ObserveInterpretation(outcome string, duration time.Duration)
	SetCircuitBreakerState(state float64)
}

// TransactionGeneratorInterface generates realistic transaction data for
// development seeding and tests.
type TransactionGeneratorInterface interface {
	GenerateHistoricalTransactions(accountID uuid.UUID, startDate, endDate time.Time, count int) []models.Transaction
	SelectRandomMerchant() models.MerchantInfo
	GenerateAmount(categoryID string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}
