package services

import (
	"fmt"
	"math/rand"
	"time"

	"txn-search/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	businessHoursStart = 6
	businessHoursEnd   = 24
)

type transactionGenerator struct {
	merchantPool []models.MerchantInfo
	rng          *rand.Rand
}

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(source),
	}
}

// initializeMerchantPool creates a pool of realistic merchants
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Groceries
		{Name: "Walmart Supercenter", CategoryID: models.CategoryGroceries},
		{Name: "Kroger", CategoryID: models.CategoryGroceries},
		{Name: "Whole Foods Market", CategoryID: models.CategoryGroceries},
		{Name: "Safeway", CategoryID: models.CategoryGroceries},
		{Name: "Trader Joe's", CategoryID: models.CategoryGroceries},
		{Name: "Costco Wholesale", CategoryID: models.CategoryGroceries},
		{Name: "Aldi", CategoryID: models.CategoryGroceries},

		// Coffee & Tea
		{Name: "Starbucks", CategoryID: models.CategoryCoffeeTea},
		{Name: "Peet's Coffee", CategoryID: models.CategoryCoffeeTea},
		{Name: "Blue Bottle Coffee", CategoryID: models.CategoryCoffeeTea},
		{Name: "Dunkin'", CategoryID: models.CategoryCoffeeTea},

		// Dining
		{Name: "McDonald's", CategoryID: models.CategoryDining},
		{Name: "Chipotle Mexican Grill", CategoryID: models.CategoryDining},
		{Name: "Subway", CategoryID: models.CategoryDining},
		{Name: "Panera Bread", CategoryID: models.CategoryDining},
		{Name: "Olive Garden", CategoryID: models.CategoryDining},
		{Name: "Taco Bell", CategoryID: models.CategoryDining},

		// Transportation
		{Name: "Uber", CategoryID: models.CategoryTransportation},
		{Name: "Lyft", CategoryID: models.CategoryTransportation},
		{Name: "Shell", CategoryID: models.CategoryTransportation},
		{Name: "Chevron", CategoryID: models.CategoryTransportation},
		{Name: "ExxonMobil", CategoryID: models.CategoryTransportation},

		// Shopping
		{Name: "Amazon.com", CategoryID: models.CategoryShopping},
		{Name: "Target", CategoryID: models.CategoryShopping},
		{Name: "Best Buy", CategoryID: models.CategoryShopping},
		{Name: "Home Depot", CategoryID: models.CategoryShopping},
		{Name: "IKEA", CategoryID: models.CategoryShopping},

		// Entertainment
		{Name: "Netflix", CategoryID: models.CategoryEntertainment},
		{Name: "Spotify", CategoryID: models.CategoryEntertainment},
		{Name: "AMC Theaters", CategoryID: models.CategoryEntertainment},
		{Name: "Hulu", CategoryID: models.CategoryEntertainment},

		// Bills & Utilities
		{Name: "AT&T", CategoryID: models.CategoryBillsUtilities},
		{Name: "Verizon", CategoryID: models.CategoryBillsUtilities},
		{Name: "Comcast", CategoryID: models.CategoryBillsUtilities},
		{Name: "PG&E", CategoryID: models.CategoryBillsUtilities},

		// Healthcare
		{Name: "CVS Pharmacy", CategoryID: models.CategoryHealthcare},
		{Name: "Walgreens", CategoryID: models.CategoryHealthcare},

		// Travel
		{Name: "Delta Air Lines", CategoryID: models.CategoryTravel},
		{Name: "United Airlines", CategoryID: models.CategoryTravel},
		{Name: "Marriott", CategoryID: models.CategoryTravel},
		{Name: "Hilton", CategoryID: models.CategoryTravel},
	}
}

// GenerateHistoricalTransactions generates a realistic mix of purchases,
// salary deposits and fees across the date range.
func (g *transactionGenerator) GenerateHistoricalTransactions(accountID uuid.UUID, startDate, endDate time.Time, count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		roll := g.rng.Intn(100)
		switch {
		case roll < 5:
			transactions = append(transactions, g.generateSalaryDeposit(accountID, startDate, endDate))
		case roll < 8:
			transactions = append(transactions, g.generateFee(accountID, startDate, endDate))
		default:
			transactions = append(transactions, g.generatePurchase(accountID, startDate, endDate))
		}
	}

	return transactions
}

func (g *transactionGenerator) generatePurchase(accountID uuid.UUID, startDate, endDate time.Time) models.Transaction {
	merchant := g.SelectRandomMerchant()
	city := gofakeit.City()

	return models.Transaction{
		AccountID:          accountID,
		Date:               g.GenerateTimestamp(startDate, endDate),
		Description:        fmt.Sprintf("Debit Card Purchase at %s - %s", merchant.Name, city),
		Amount:             g.GenerateAmount(merchant.CategoryID).Neg(),
		MerchantName:       merchant.Name,
		NormalizedMerchant: models.NormalizeMerchant(merchant.Name),
		CategoryID:         merchant.CategoryID,
		CategoryConfidence: 0.95,
		CategorySource:     models.CategorySourceMerchant,
		Reviewed:           g.rng.Intn(4) == 0,
	}
}

func (g *transactionGenerator) generateSalaryDeposit(accountID uuid.UUID, startDate, endDate time.Time) models.Transaction {
	return models.Transaction{
		AccountID:          accountID,
		Date:               g.GenerateTimestamp(startDate, endDate),
		Description:        fmt.Sprintf("Direct Deposit - Salary %s", gofakeit.Company()),
		Amount:             decimal.New(int64(g.rng.Intn(300000)+150000), -2),
		CategoryID:         models.CategoryIncome,
		CategoryConfidence: 0.95,
		CategorySource:     models.CategorySourceDescription,
		Reviewed:           true,
	}
}

func (g *transactionGenerator) generateFee(accountID uuid.UUID, startDate, endDate time.Time) models.Transaction {
	return models.Transaction{
		AccountID:          accountID,
		Date:               g.GenerateTimestamp(startDate, endDate),
		Description:        "Monthly Service Fee",
		Amount:             decimal.New(int64(g.rng.Intn(2000)+500), -2).Neg(),
		CategoryID:         models.CategoryFees,
		CategoryConfidence: 0.9,
		CategorySource:     models.CategorySourceDescription,
		Reviewed:           false,
	}
}

// SelectRandomMerchant picks a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() models.MerchantInfo {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
}

// GenerateAmount generates a positive amount sized for the category
func (g *transactionGenerator) GenerateAmount(categoryID string) decimal.Decimal {
	var cents int64
	switch categoryID {
	case models.CategoryCoffeeTea:
		cents = int64(g.rng.Intn(1200) + 300)
	case models.CategoryDining:
		cents = int64(g.rng.Intn(6000) + 800)
	case models.CategoryGroceries:
		cents = int64(g.rng.Intn(18000) + 1500)
	case models.CategoryTravel:
		cents = int64(g.rng.Intn(80000) + 9000)
	case models.CategoryBillsUtilities:
		cents = int64(g.rng.Intn(15000) + 3000)
	default:
		cents = int64(g.rng.Intn(12000) + 500)
	}
	return decimal.New(cents, -2)
}

// GenerateTimestamp generates a timestamp within the date range during
// plausible hours
func (g *transactionGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	days := int(endDate.Sub(startDate).Hours() / 24)
	if days <= 0 {
		days = 1
	}

	day := startDate.AddDate(0, 0, g.rng.Intn(days))
	hour := g.rng.Intn(businessHoursEnd-businessHoursStart) + businessHoursStart
	minute := g.rng.Intn(60)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}
