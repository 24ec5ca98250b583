package handlers

import (
	"fmt"
	"net/http"
	"time"

	"txn-search/internal/dto"
	"txn-search/internal/errors"
	"txn-search/internal/models"
	"txn-search/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SearchHandler handles natural-language transaction search requests
type SearchHandler struct {
	searchService services.SearchServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search executes a natural-language transaction search
// @Summary Search transactions
// @Description Interpret a natural-language query, merge it with explicit filters and return matching transactions. When the interpreter is unavailable the search degrades to keyword matching and the response carries fallback=true.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} dto.SearchResponse "Search results"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(formatValidationErrors(err)...))
	}

	manual, err := buildManualFilters(req)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}
	offset := 0
	if req.Offset != nil {
		offset = *req.Offset
	}

	ctx := services.WithCorrelationID(c.Request().Context(), getTraceID(c))
	response, err := h.searchService.Search(ctx, req.Query, manual, limit, offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// buildManualFilters converts the validated request into the typed manual
// filter set. Amounts arrive as integer minor units and are converted to
// decimal here so no float ever touches a money value.
func buildManualFilters(req dto.SearchRequest) (models.ManualFilters, error) {
	var manual models.ManualFilters

	if req.AccountID != "" {
		accountID, err := uuid.Parse(req.AccountID)
		if err != nil {
			return manual, fmt.Errorf("account_id: must be a valid UUID")
		}
		manual.AccountID = &accountID
	}

	if req.CategoryID != "" {
		categoryID := req.CategoryID
		manual.CategoryID = &categoryID
	}

	if req.DateFrom != "" {
		dateFrom, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return manual, fmt.Errorf("date_from: invalid date, use YYYY-MM-DD")
		}
		manual.DateFrom = &dateFrom
	}

	if req.DateTo != "" {
		dateTo, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return manual, fmt.Errorf("date_to: invalid date, use YYYY-MM-DD")
		}
		manual.DateTo = &dateTo
	}

	if manual.DateFrom != nil && manual.DateTo != nil && manual.DateFrom.After(*manual.DateTo) {
		return manual, fmt.Errorf("date_from: must not be after date_to")
	}

	if req.AmountMin != nil {
		amountMin := decimal.New(*req.AmountMin, -2)
		manual.AmountMin = &amountMin
	}

	if req.AmountMax != nil {
		amountMax := decimal.New(*req.AmountMax, -2)
		manual.AmountMax = &amountMax
	}

	if manual.AmountMin != nil && manual.AmountMax != nil && manual.AmountMin.GreaterThan(*manual.AmountMax) {
		return manual, fmt.Errorf("amount_min: must not exceed amount_max")
	}

	manual.Reviewed = req.Reviewed

	return manual, nil
}

// formatValidationErrors converts validator errors into field-level detail
// messages
func formatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request payload"}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, formatFieldError(fieldError))
	}
	return details
}

func formatFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, fieldError.Param())
	case "uuid4":
		return fmt.Sprintf("%s: must be a valid UUID", field)
	case "datetime":
		return fmt.Sprintf("%s: invalid date, use YYYY-MM-DD", field)
	case "category_id":
		return fmt.Sprintf("%s: unknown category", field)
	default:
		return fmt.Sprintf("%s: is invalid", field)
	}
}
