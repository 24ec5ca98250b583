package repositories

import (
	"errors"
	"fmt"
	"strings"

	"txn-search/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Search retrieves the page of transactions matching the effective filter
// set. Structured fields are conjunctive; keyword terms form a single
// disjunctive group over the description and merchant columns, conjoined
// with the structured predicate.
func (r *transactionRepository) Search(filters models.SearchFilters, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})
	query = applyStructuredFilters(query, filters)
	query = applyKeywordFilter(query, filters.TextTerms())

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count matching transactions: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("date DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

func applyStructuredFilters(query *gorm.DB, filters models.SearchFilters) *gorm.DB {
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}
	if filters.AmountMin != nil {
		query = query.Where("amount >= ?", *filters.AmountMin)
	}
	if filters.AmountMax != nil {
		query = query.Where("amount <= ?", *filters.AmountMax)
	}
	if filters.Reviewed != nil {
		query = query.Where("reviewed = ?", *filters.Reviewed)
	}
	return applyCategoryFilter(query, filters.CategoryIDs)
}

// applyCategoryFilter maps the category dimension onto SQL. The
// "uncategorized" sentinel selects transactions with no category assigned.
func applyCategoryFilter(query *gorm.DB, categoryIDs []string) *gorm.DB {
	if len(categoryIDs) == 0 {
		return query
	}

	var ids []string
	uncategorized := false
	for _, id := range categoryIDs {
		if id == models.CategoryUncategorized {
			uncategorized = true
		} else {
			ids = append(ids, id)
		}
	}

	switch {
	case uncategorized && len(ids) > 0:
		return query.Where("(category_id IN ? OR category_id = '' OR category_id IS NULL)", ids)
	case uncategorized:
		return query.Where("(category_id = '' OR category_id IS NULL)")
	default:
		return query.Where("category_id IN ?", ids)
	}
}

// applyKeywordFilter builds the disjunctive text-match group. LOWER+LIKE is
// used rather than ILIKE so the predicate works on both postgres and the
// sqlite test databases.
func applyKeywordFilter(query *gorm.DB, terms []string) *gorm.DB {
	if len(terms) == 0 {
		return query
	}

	conds := make([]string, 0, len(terms))
	args := make([]interface{}, 0, len(terms)*3)
	for _, term := range terms {
		pattern := "%" + strings.ToLower(term) + "%"
		conds = append(conds, "(LOWER(description) LIKE ? OR LOWER(merchant_name) LIKE ? OR LOWER(normalized_merchant) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}
