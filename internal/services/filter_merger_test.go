package services

import (
	"testing"
	"time"

	"txn-search/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// FilterMergerSuite defines the test suite for MergeFilters
type FilterMergerSuite struct {
	suite.Suite
	janFirst time.Time
	janLast  time.Time
	marFirst time.Time
}

func (s *FilterMergerSuite) SetupTest() {
	s.janFirst = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.janLast = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	s.marFirst = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestFilterMergerSuite(t *testing.T) {
	suite.Run(t, new(FilterMergerSuite))
}

func (s *FilterMergerSuite) TestInterpretedDatesAdoptedWithoutManualFilters() {
	interp := &models.Interpretation{
		DateFrom:         &s.janFirst,
		DateTo:           &s.janLast,
		MerchantKeywords: []string{"starbucks", "coffee"},
	}

	filters := MergeFilters(models.ManualFilters{}, interp, "coffee purchases last month")

	s.Require().NotNil(filters.DateFrom)
	s.Require().NotNil(filters.DateTo)
	s.Equal(s.janFirst, *filters.DateFrom)
	s.Equal(s.janLast, *filters.DateTo)
	s.Equal([]string{"starbucks", "coffee"}, filters.MerchantKeywords)
	s.Empty(filters.QueryTokens)
}

func (s *FilterMergerSuite) TestManualDateClaimsWholeDimension() {
	manual := models.ManualFilters{DateFrom: &s.marFirst}
	interp := &models.Interpretation{
		DateFrom: &s.janFirst,
		DateTo:   &s.janLast,
	}

	filters := MergeFilters(manual, interp, "spending in january")

	s.Require().NotNil(filters.DateFrom)
	s.Equal(s.marFirst, *filters.DateFrom)
	// The interpreted date_to must not fill the gap the manual request left
	s.Nil(filters.DateTo)
}

func (s *FilterMergerSuite) TestIndependentDimensionsCombine() {
	accountID := uuid.New()
	manual := models.ManualFilters{AccountID: &accountID}
	interp := &models.Interpretation{
		DateFrom:         &s.janFirst,
		MerchantKeywords: []string{"coffee"},
	}

	filters := MergeFilters(manual, interp, "coffee in january")

	s.Require().NotNil(filters.AccountID)
	s.Equal(accountID, *filters.AccountID)
	s.Require().NotNil(filters.DateFrom)
	s.Equal(s.janFirst, *filters.DateFrom)
	s.Equal([]string{"coffee"}, filters.MerchantKeywords)
}

func (s *FilterMergerSuite) TestNilInterpretationFallsBackToQueryTokens() {
	manual := models.ManualFilters{DateFrom: &s.marFirst}

	filters := MergeFilters(manual, nil, "big starbucks charges")

	s.Require().NotNil(filters.DateFrom)
	s.Equal(s.marFirst, *filters.DateFrom)
	s.Empty(filters.MerchantKeywords)
	s.Empty(filters.DescriptionKeywords)
	s.Equal([]string{"big", "starbucks", "charges"}, filters.QueryTokens)
}

func (s *FilterMergerSuite) TestManualAmountClaimsWholeDimension() {
	min := decimal.New(1000, -2)
	interpMin := decimal.New(500, -2)
	interpMax := decimal.New(20000, -2)
	manual := models.ManualFilters{AmountMin: &min}
	interp := &models.Interpretation{
		AmountMin: &interpMin,
		AmountMax: &interpMax,
	}

	filters := MergeFilters(manual, interp, "purchases over ten dollars")

	s.Require().NotNil(filters.AmountMin)
	s.True(min.Equal(*filters.AmountMin))
	s.Nil(filters.AmountMax)
}

func (s *FilterMergerSuite) TestManualCategoryDiscardsInterpretedCandidates() {
	category := models.CategoryGroceries
	manual := models.ManualFilters{CategoryID: &category}
	interp := &models.Interpretation{
		CategoryIDs: []string{models.CategoryCoffeeTea, models.CategoryDining},
	}

	filters := MergeFilters(manual, interp, "coffee")

	s.Equal([]string{models.CategoryGroceries}, filters.CategoryIDs)
}

func (s *FilterMergerSuite) TestInterpretedCategoriesAdopted() {
	interp := &models.Interpretation{
		CategoryIDs: []string{models.CategoryCoffeeTea},
	}

	filters := MergeFilters(models.ManualFilters{}, interp, "coffee")

	s.Equal([]string{models.CategoryCoffeeTea}, filters.CategoryIDs)
}

func (s *FilterMergerSuite) TestKeywordlessInterpretationStillGetsQueryTokens() {
	interp := &models.Interpretation{
		DateFrom: &s.janFirst,
		DateTo:   &s.janLast,
	}

	filters := MergeFilters(models.ManualFilters{}, interp, "everything from starbucks")

	s.Equal([]string{"everything", "starbucks"}, filters.QueryTokens)
}

func (s *FilterMergerSuite) TestReviewedPassesThrough() {
	reviewed := true
	manual := models.ManualFilters{Reviewed: &reviewed}

	filters := MergeFilters(manual, nil, "reviewed transactions")

	s.Require().NotNil(filters.Reviewed)
	s.True(*filters.Reviewed)
}

func (s *FilterMergerSuite) TestMergeIsPure() {
	interp := &models.Interpretation{
		DateFrom:         &s.janFirst,
		CategoryIDs:      []string{models.CategoryCoffeeTea},
		MerchantKeywords: []string{"starbucks"},
	}
	manual := models.ManualFilters{}

	first := MergeFilters(manual, interp, "coffee last month")
	second := MergeFilters(manual, interp, "coffee last month")
	s.Equal(first, second)

	// Mutating the merged slices must not leak back into the interpretation
	first.CategoryIDs[0] = "MUTATED"
	first.MerchantKeywords[0] = "mutated"
	s.Equal([]string{models.CategoryCoffeeTea}, interp.CategoryIDs)
	s.Equal([]string{"starbucks"}, interp.MerchantKeywords)
}

func (s *FilterMergerSuite) TestTokenizeQuery() {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "drops stopwords and short tokens",
			query:    "show me all coffee purchases from last month",
			expected: []string{"coffee"},
		},
		{
			name:     "lowercases and splits on punctuation",
			query:    "Trader Joe's, January!",
			expected: []string{"trader", "joe", "january"},
		},
		{
			name:     "deduplicates repeated tokens",
			query:    "starbucks starbucks coffee starbucks",
			expected: []string{"starbucks", "coffee"},
		},
		{
			name:     "empty query yields no tokens",
			query:    "",
			expected: nil,
		},
		{
			name:     "only stopwords yields no tokens",
			query:    "show me all the spending",
			expected: nil,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, TokenizeQuery(tt.query))
		})
	}
}
