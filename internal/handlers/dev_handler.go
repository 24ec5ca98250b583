package handlers

import (
	"fmt"
	"net/http"
	"time"

	"txn-search/internal/repositories"
	"txn-search/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// GenerateTestData generates realistic test transaction data for an account
//
// Method: POST /api/v1/dev/accounts/:accountId/generate-test-data
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	accountIDStr := c.Param("accountId")
	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account ID")
	}

	count := getIntQueryParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntQueryParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.generator.GenerateHistoricalTransactions(accountID, startDate, endDate, count)

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store generated transactions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": len(transactions),
		"account_id":           accountID,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
