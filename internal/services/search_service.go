package services

import (
	"context"
	"fmt"
	"time"

	"txn-search/internal/dto"
	"txn-search/internal/interpreter"
	"txn-search/internal/models"
	"txn-search/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200

	SearchModeInterpreted = "interpreted"
	SearchModeFallback    = "fallback"
)

// fallbackReasons are the fixed user-facing messages attached when the
// interpreter fails and the request downgrades to keyword matching.
var fallbackReasons = map[interpreter.FailureKind]string{
	interpreter.FailureUnavailable: "The natural-language service is unavailable; results match your filters and raw keywords only.",
	interpreter.FailureTimeout:     "The natural-language service timed out; results match your filters and raw keywords only.",
	interpreter.FailureMalformed:   "The natural-language service returned an unusable answer; results match your filters and raw keywords only.",
}

// SearchService orchestrates a search request: interpretation attempt,
// filter merge, store execution and response assembly. On any interpreter
// failure it switches to the degraded text-match path rather than failing
// the request.
type SearchService struct {
	transactionRepo    repositories.TransactionRepositoryInterface
	interp             interpreter.Interpreter
	interpreterTimeout time.Duration
	logger             *SearchLogger
	metrics            SearchMetricsInterface
	now                func() time.Time
}

// NewSearchService creates a new search service. The interpreter timeout
// bounds every outbound interpretation call.
func NewSearchService(
	transactionRepo repositories.TransactionRepositoryInterface,
	interp interpreter.Interpreter,
	interpreterTimeout time.Duration,
	logger *SearchLogger,
	metrics SearchMetricsInterface,
) SearchServiceInterface {
	return &SearchService{
		transactionRepo:    transactionRepo,
		interp:             interp,
		interpreterTimeout: interpreterTimeout,
		logger:             logger,
		metrics:            metrics,
		now:                time.Now,
	}
}

// Search runs the full pipeline for one request.
func (s *SearchService) Search(ctx context.Context, query string, manual models.ManualFilters, limit, offset int) (*dto.SearchResponse, error) {
	limit, offset = clampPagination(limit, offset)
	started := s.now()

	s.logger.LogSearchStarted(ctx, query)

	interp, failure := s.interpret(ctx, query)

	filters := MergeFilters(manual, interp, query)

	items, total, err := s.transactionRepo.Search(filters, offset, limit)
	if err != nil {
		s.logger.LogSearchFailed(ctx, err, s.sinceMs(started))
		return nil, fmt.Errorf("search transactions: %w", err)
	}

	response := assembleResponse(items, total, limit, offset, interp, failure)

	mode := SearchModeInterpreted
	if response.Fallback {
		mode = SearchModeFallback
	}
	s.metrics.ObserveSearch(mode, s.now().Sub(started))
	s.logger.LogSearchCompleted(ctx, total, response.Fallback, s.sinceMs(started))

	return response, nil
}

// GetTransaction returns a single transaction view
func (s *SearchService) GetTransaction(id uuid.UUID) (*dto.TransactionView, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := toTransactionView(*transaction)
	return &view, nil
}

// interpret attempts interpretation under the configured timeout. A nil
// interpretation with a non-empty failure kind means the fallback path.
func (s *SearchService) interpret(ctx context.Context, query string) (*models.Interpretation, interpreter.FailureKind) {
	ictx, cancel := context.WithTimeout(ctx, s.interpreterTimeout)
	defer cancel()

	started := s.now()
	interp, err := s.interp.Interpret(ictx, query, s.now())
	elapsed := s.now().Sub(started)

	if err != nil {
		kind := interpreter.KindOf(err)
		s.metrics.ObserveInterpretation(string(kind), elapsed)
		s.logger.LogInterpretationFailed(ctx, string(kind), err, elapsed.Milliseconds())
		return nil, kind
	}

	s.metrics.ObserveInterpretation("ok", elapsed)
	s.logger.LogInterpretationSucceeded(ctx, interp.Summary, elapsed.Milliseconds())
	return interp, ""
}

func (s *SearchService) sinceMs(started time.Time) int64 {
	return s.now().Sub(started).Milliseconds()
}

// clampPagination applies the documented defaults and bounds before any
// filter work happens.
func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// assembleResponse packages the result envelope. Interpretation is present
// only on the interpreted path and fallback_reason is non-nil iff fallback.
func assembleResponse(items []models.Transaction, total int64, limit, offset int, interp *models.Interpretation, failure interpreter.FailureKind) *dto.SearchResponse {
	views := make([]dto.TransactionView, 0, len(items))
	for _, txn := range items {
		views = append(views, toTransactionView(txn))
	}

	response := &dto.SearchResponse{
		Items:   views,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(views)) < total,
	}

	if failure != "" {
		reason := fallbackReasons[failure]
		response.Fallback = true
		response.FallbackReason = &reason
		return response
	}

	response.Interpretation = toInterpretationView(interp)
	return response
}

func toTransactionView(txn models.Transaction) dto.TransactionView {
	return dto.TransactionView{
		ID:                 txn.ID,
		AccountID:          txn.AccountID,
		Date:               txn.Date.Format("2006-01-02"),
		Description:        txn.Description,
		Amount:             txn.Amount.String(),
		MerchantName:       txn.MerchantName,
		NormalizedMerchant: txn.NormalizedMerchant,
		CategoryID:         txn.CategoryID,
		CategoryConfidence: txn.CategoryConfidence,
		CategorySource:     txn.CategorySource,
		Reviewed:           txn.Reviewed,
		CreatedAt:          txn.CreatedAt,
		UpdatedAt:          txn.UpdatedAt,
	}
}

func toInterpretationView(interp *models.Interpretation) *dto.InterpretationView {
	if interp == nil {
		return nil
	}

	view := &dto.InterpretationView{
		CategoryIDs:         interp.CategoryIDs,
		MerchantKeywords:    interp.MerchantKeywords,
		DescriptionKeywords: interp.DescriptionKeywords,
		Summary:             interp.Summary,
	}
	if interp.DateFrom != nil {
		view.DateFrom = interp.DateFrom.Format("2006-01-02")
	}
	if interp.DateTo != nil {
		view.DateTo = interp.DateTo.Format("2006-01-02")
	}
	if interp.AmountMin != nil {
		view.AmountMin = interp.AmountMin.String()
	}
	if interp.AmountMax != nil {
		view.AmountMax = interp.AmountMax.String()
	}
	return view
}
