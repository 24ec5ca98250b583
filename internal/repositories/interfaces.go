package repositories

import (
	"txn-search/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines transaction store access. The
// search core only reads; CreateBatch exists for seeding and tests.
type TransactionRepositoryInterface interface {
	// Search returns the page of transactions matching the effective filter
	// set, ordered by date descending with the transaction identifier as a
	// tie-break, plus the total match count ignoring pagination.
	Search(filters models.SearchFilters, offset, limit int) ([]models.Transaction, int64, error)

	GetByID(id uuid.UUID) (*models.Transaction, error)

	CreateBatch(transactions []models.Transaction) error
}
