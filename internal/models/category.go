package models

// Standard transaction categories based on industry standards
const (
	CategoryGroceries      = "GROCERIES"
	CategoryCoffeeTea      = "COFFEE_TEA"
	CategoryDining         = "DINING"
	CategoryTransportation = "TRANSPORTATION"
	CategoryEntertainment  = "ENTERTAINMENT"
	CategoryShopping       = "SHOPPING"
	CategoryBillsUtilities = "BILLS_UTILITIES"
	CategoryHealthcare     = "HEALTHCARE"
	CategoryTravel         = "TRAVEL"
	CategoryATMCash        = "ATM_CASH"
	CategoryIncome         = "INCOME"
	CategoryFees           = "FEES"
	CategoryOther          = "OTHER"
)

// CategoryUncategorized is the sentinel accepted in place of a category
// identifier to select transactions with no category assigned.
const CategoryUncategorized = "uncategorized"

// Categorization source types
const (
	CategorySourceMerchant    = "MERCHANT"
	CategorySourceDescription = "DESCRIPTION"
	CategorySourceManual      = "MANUAL"
	CategorySourceFallback    = "FALLBACK"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryCoffeeTea,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryATMCash,
		CategoryIncome,
		CategoryFees,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
