package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Interpretation is the structured filter set derived from a
// natural-language query by the external understanding service. Any field
// may be absent. An Interpretation is created fresh per request and is
// discarded once the response has been assembled.
type Interpretation struct {
	DateFrom            *time.Time       `json:"date_from,omitempty"`
	DateTo              *time.Time       `json:"date_to,omitempty"`
	AmountMin           *decimal.Decimal `json:"amount_min,omitempty"`
	AmountMax           *decimal.Decimal `json:"amount_max,omitempty"`
	CategoryIDs         []string         `json:"category_ids,omitempty"`
	MerchantKeywords    []string         `json:"merchant_keywords,omitempty"`
	DescriptionKeywords []string         `json:"description_keywords,omitempty"`
	Summary             string           `json:"summary,omitempty"`
}

// HasDateRange reports whether the date dimension was determined.
func (i *Interpretation) HasDateRange() bool {
	return i != nil && (i.DateFrom != nil || i.DateTo != nil)
}

// HasAmountRange reports whether the amount dimension was determined.
func (i *Interpretation) HasAmountRange() bool {
	return i != nil && (i.AmountMin != nil || i.AmountMax != nil)
}

// HasKeywords reports whether any text term was derived from the query.
func (i *Interpretation) HasKeywords() bool {
	return i != nil && (len(i.MerchantKeywords) > 0 || len(i.DescriptionKeywords) > 0)
}
