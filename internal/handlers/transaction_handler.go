package handlers

import (
	"net/http"

	"txn-search/internal/errors"
	"txn-search/internal/repositories"
	"txn-search/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction read requests
type TransactionHandler struct {
	searchService services.SearchServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(searchService services.SearchServiceInterface) *TransactionHandler {
	return &TransactionHandler{searchService: searchService}
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve detailed information about a specific transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionView "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID format"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionIDStr := c.Param("id")
	transactionID, err := uuid.Parse(transactionIDStr)
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	view, err := h.searchService.GetTransaction(transactionID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}
