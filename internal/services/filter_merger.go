package services

import (
	"strings"

	"txn-search/internal/models"
)

// stopwords excluded from raw-query tokenization. Matching these against
// descriptions produces noise ("last month" should not match "Monthly Fee").
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "from": true, "with": true,
	"all": true, "any": true, "last": true, "this": true, "that": true,
	"month": true, "week": true, "year": true, "today": true, "yesterday": true,
	"purchases": true, "purchase": true, "payments": true, "payment": true,
	"transactions": true, "transaction": true, "spending": true, "spent": true,
	"show": true, "find": true, "list": true, "over": true, "under": true,
	"between": true, "than": true, "more": true, "less": true, "about": true,
}

const minTokenLength = 3

// MergeFilters combines the manual filter set with an Interpretation (nil
// when interpretation failed or was skipped) into the single effective
// filter set applied to the transaction store.
//
// Fields are grouped into dimensions (date range, amount range, category,
// account) and each dimension is resolved as a whole: any manual field in a
// dimension claims the entire dimension verbatim and the interpreted values
// for it are dropped, even the ones that would have filled a gap. The merge
// is pure: same inputs, same output, no hidden state.
func MergeFilters(manual models.ManualFilters, interp *models.Interpretation, query string) models.SearchFilters {
	filters := models.SearchFilters{}

	// Date dimension
	if manual.HasDateFilter() {
		filters.DateFrom = manual.DateFrom
		filters.DateTo = manual.DateTo
	} else if interp.HasDateRange() {
		filters.DateFrom = interp.DateFrom
		filters.DateTo = interp.DateTo
	}

	// Amount dimension
	if manual.HasAmountFilter() {
		filters.AmountMin = manual.AmountMin
		filters.AmountMax = manual.AmountMax
	} else if interp.HasAmountRange() {
		filters.AmountMin = interp.AmountMin
		filters.AmountMax = interp.AmountMax
	}

	// Category dimension: a manual category is exactly one identifier and
	// discards every interpreted candidate.
	if manual.CategoryID != nil {
		filters.CategoryIDs = []string{*manual.CategoryID}
	} else if interp != nil && len(interp.CategoryIDs) > 0 {
		filters.CategoryIDs = append([]string(nil), interp.CategoryIDs...)
	}

	// Account dimension: interpretation never produces accounts.
	filters.AccountID = manual.AccountID

	// Reviewed is not a merge dimension; it only exists manually.
	filters.Reviewed = manual.Reviewed

	// Keyword terms are additive, never overriding. Raw query tokens join
	// the text match only when interpretation contributed no keyword terms,
	// which covers the fallback path and keyword-less interpretations.
	if interp != nil {
		filters.MerchantKeywords = append([]string(nil), interp.MerchantKeywords...)
		filters.DescriptionKeywords = append([]string(nil), interp.DescriptionKeywords...)
	}
	if !interp.HasKeywords() {
		filters.QueryTokens = TokenizeQuery(query)
	}

	return filters
}

// TokenizeQuery splits a raw query into lowercase keyword tokens for the
// degraded text-match path. Non-alphanumeric runes delimit tokens; short
// tokens and stopwords are dropped.
func TokenizeQuery(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	seen := make(map[string]bool, len(fields))
	var tokens []string
	for _, field := range fields {
		if len(field) < minTokenLength || stopwords[field] || seen[field] {
			continue
		}
		seen[field] = true
		tokens = append(tokens, field)
	}
	return tokens
}
