package services

import (
	"testing"
	"time"

	"txn-search/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator *transactionGenerator
	accountID uuid.UUID
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = NewTransactionGenerator().(*transactionGenerator)
	s.accountID = uuid.New()
}

// Merchant Pool Tests

func (s *TransactionGeneratorTestSuite) TestMerchantPool_ContainsVariety() {
	categories := make(map[string]bool)
	for _, merchant := range s.generator.merchantPool {
		categories[merchant.CategoryID] = true
	}

	s.GreaterOrEqual(len(categories), 8, "Merchant pool should span at least 8 categories")
}

func (s *TransactionGeneratorTestSuite) TestMerchantPool_AllEntriesValid() {
	for _, merchant := range s.generator.merchantPool {
		s.NotEmpty(merchant.Name)
		s.True(models.IsValidCategory(merchant.CategoryID), "Merchant %s has invalid category %s", merchant.Name, merchant.CategoryID)
	}
}

func (s *TransactionGeneratorTestSuite) TestSelectRandomMerchant_ReturnsValidMerchant() {
	for i := 0; i < 100; i++ {
		merchant := s.generator.SelectRandomMerchant()
		s.NotEmpty(merchant.Name)
		s.True(models.IsValidCategory(merchant.CategoryID))
	}
}

// Amount Generation Tests

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_ValidRange() {
	for i := 0; i < 100; i++ {
		amount := s.generator.GenerateAmount(models.CategoryGroceries)
		s.True(amount.GreaterThan(decimal.Zero), "Amount should be positive")
		s.True(amount.LessThan(decimal.NewFromInt(10000)), "Amount should be reasonable")
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_CategoryBasedRanges() {
	testCases := []struct {
		category string
		min      decimal.Decimal
		max      decimal.Decimal
	}{
		{models.CategoryCoffeeTea, decimal.NewFromInt(3), decimal.NewFromInt(15)},
		{models.CategoryDining, decimal.NewFromInt(8), decimal.NewFromInt(68)},
		{models.CategoryGroceries, decimal.NewFromInt(15), decimal.NewFromInt(195)},
		{models.CategoryTravel, decimal.NewFromInt(90), decimal.NewFromInt(890)},
		{models.CategoryBillsUtilities, decimal.NewFromInt(30), decimal.NewFromInt(180)},
	}

	for _, tc := range testCases {
		s.Run(tc.category, func() {
			for i := 0; i < 50; i++ {
				amount := s.generator.GenerateAmount(tc.category)
				s.True(amount.GreaterThanOrEqual(tc.min), "Amount %s below minimum for %s", amount, tc.category)
				s.True(amount.LessThanOrEqual(tc.max), "Amount %s above maximum for %s", amount, tc.category)
			}
		})
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_TwoDecimalPlaces() {
	for i := 0; i < 50; i++ {
		amount := s.generator.GenerateAmount(models.CategoryDining)
		s.LessOrEqual(int32(2), -amount.Exponent(), "Amount should be expressed in cents")
	}
}

// Timestamp Generation Tests

func (s *TransactionGeneratorTestSuite) TestGenerateTimestamp_WithinDateRange() {
	startDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ts := s.generator.GenerateTimestamp(startDate, endDate)
		s.False(ts.Before(startDate), "Timestamp should not be before start date")
		s.True(ts.Before(endDate.AddDate(0, 0, 1)), "Timestamp should not be after end date")
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTimestamp_BusinessHours() {
	startDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ts := s.generator.GenerateTimestamp(startDate, endDate)
		s.GreaterOrEqual(ts.Hour(), businessHoursStart)
		s.Less(ts.Hour(), businessHoursEnd)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTimestamp_SameDayRange() {
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	ts := s.generator.GenerateTimestamp(day, day)
	s.Equal(day.Year(), ts.Year())
	s.Equal(day.Month(), ts.Month())
	s.Equal(day.Day(), ts.Day())
}

// Historical Generation Tests

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_Count() {
	startDate := time.Now().AddDate(0, -3, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 100)
	s.Len(transactions, 100)
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_AllBelongToAccount() {
	startDate := time.Now().AddDate(0, -1, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 50)
	for _, txn := range transactions {
		s.Equal(s.accountID, txn.AccountID)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_AllValid() {
	startDate := time.Now().AddDate(0, -1, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 100)
	for _, txn := range transactions {
		s.NoError(txn.Validate())
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_AmountSigns() {
	startDate := time.Now().AddDate(0, -3, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 500)

	for _, txn := range transactions {
		if txn.CategoryID == models.CategoryIncome {
			s.True(txn.Amount.GreaterThan(decimal.Zero), "Deposits should be positive")
		} else {
			s.True(txn.Amount.LessThan(decimal.Zero), "Purchases and fees should be negative")
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_MixesTransactionKinds() {
	startDate := time.Now().AddDate(0, -3, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 1000)

	deposits := 0
	fees := 0
	purchases := 0
	for _, txn := range transactions {
		switch txn.CategoryID {
		case models.CategoryIncome:
			deposits++
		case models.CategoryFees:
			fees++
		default:
			purchases++
		}
	}

	s.Greater(deposits, 0, "Should generate some deposits")
	s.Greater(fees, 0, "Should generate some fees")
	s.Greater(purchases, deposits+fees, "Purchases should dominate")
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistoricalTransactions_PurchasesCarryMerchant() {
	startDate := time.Now().AddDate(0, -1, 0)
	endDate := time.Now()

	transactions := s.generator.GenerateHistoricalTransactions(s.accountID, startDate, endDate, 200)

	for _, txn := range transactions {
		if txn.CategoryID == models.CategoryIncome || txn.CategoryID == models.CategoryFees {
			continue
		}
		s.NotEmpty(txn.MerchantName)
		s.Equal(models.NormalizeMerchant(txn.MerchantName), txn.NormalizedMerchant)
		s.Equal(models.CategorySourceMerchant, txn.CategorySource)
	}
}
