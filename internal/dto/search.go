package dto

import (
	"time"

	"github.com/google/uuid"
)

// SearchRequest is the payload for natural-language transaction search.
// The query is required; every other field is an optional explicit filter
// that takes precedence over interpreted values within its dimension.
type SearchRequest struct {
	Query      string `json:"query" validate:"required,min=1,max=500"`
	AccountID  string `json:"account_id,omitempty" validate:"omitempty,uuid4"`
	CategoryID string `json:"category_id,omitempty" validate:"omitempty,category_id"`
	DateFrom   string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AmountMin  *int64 `json:"amount_min,omitempty"`
	AmountMax  *int64 `json:"amount_max,omitempty"`
	Reviewed   *bool  `json:"reviewed,omitempty"`
	Limit      *int   `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Offset     *int   `json:"offset,omitempty" validate:"omitempty,min=0"`
}

// InterpretationView is the interpretation echoed back to the caller
type InterpretationView struct {
	DateFrom            string   `json:"date_from,omitempty"`
	DateTo              string   `json:"date_to,omitempty"`
	AmountMin           string   `json:"amount_min,omitempty"`
	AmountMax           string   `json:"amount_max,omitempty"`
	CategoryIDs         []string `json:"category_ids,omitempty"`
	MerchantKeywords    []string `json:"merchant_keywords,omitempty"`
	DescriptionKeywords []string `json:"description_keywords,omitempty"`
	Summary             string   `json:"summary,omitempty"`
}

// TransactionView is the transaction shape returned by search and read
// endpoints.
type TransactionView struct {
	ID                 uuid.UUID `json:"id"`
	AccountID          uuid.UUID `json:"account_id"`
	Date               string    `json:"date"`
	Description        string    `json:"description"`
	Amount             string    `json:"amount"`
	MerchantName       string    `json:"merchant_name,omitempty"`
	NormalizedMerchant string    `json:"normalized_merchant,omitempty"`
	CategoryID         string    `json:"category_id,omitempty"`
	CategoryConfidence float64   `json:"category_confidence,omitempty"`
	CategorySource     string    `json:"category_source,omitempty"`
	Reviewed           bool      `json:"reviewed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SearchResponse is the search result envelope. A response is returned for
// both the interpreted and the fallback path; fallback is a data-level
// signal, never a distinct status.
type SearchResponse struct {
	Items          []TransactionView   `json:"items"`
	Total          int64               `json:"total"`
	Limit          int                 `json:"limit"`
	Offset         int                 `json:"offset"`
	HasMore        bool                `json:"has_more"`
	Interpretation *InterpretationView `json:"interpretation"`
	Fallback       bool                `json:"fallback"`
	FallbackReason *string             `json:"fallback_reason,omitempty"`
}
