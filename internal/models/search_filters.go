package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualFilters holds the filter fields a caller supplied explicitly
// alongside the natural-language query. All fields are pointers so "not set"
// is distinguishable from a zero value.
type ManualFilters struct {
	AccountID  *uuid.UUID
	CategoryID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
	Reviewed   *bool
}

// HasDateFilter reports whether any field of the date dimension is set.
func (m ManualFilters) HasDateFilter() bool {
	return m.DateFrom != nil || m.DateTo != nil
}

// HasAmountFilter reports whether any field of the amount dimension is set.
func (m ManualFilters) HasAmountFilter() bool {
	return m.AmountMin != nil || m.AmountMax != nil
}

// SearchFilters is the single effective filter set applied to the
// transaction store: manual-shaped structured fields plus additive keyword
// terms. Built once per request and never mutated afterwards.
type SearchFilters struct {
	AccountID   *uuid.UUID
	CategoryIDs []string
	DateFrom    *time.Time
	DateTo      *time.Time
	AmountMin   *decimal.Decimal
	AmountMax   *decimal.Decimal
	Reviewed    *bool

	// Text terms are matched disjunctively against description and merchant
	// fields, then conjoined with the structured predicate.
	MerchantKeywords    []string
	DescriptionKeywords []string
	QueryTokens         []string
}

// TextTerms returns all keyword terms participating in text matching.
func (f SearchFilters) TextTerms() []string {
	terms := make([]string, 0, len(f.MerchantKeywords)+len(f.DescriptionKeywords)+len(f.QueryTokens))
	terms = append(terms, f.MerchantKeywords...)
	terms = append(terms, f.DescriptionKeywords...)
	terms = append(terms, f.QueryTokens...)
	return terms
}
