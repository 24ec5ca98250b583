// Package dictionary provides the read-only keyword dictionary used to
// expand natural-language phrases into canonical category identifiers and
// merchant alias lists. The snapshot is built once at startup and is safe
// for unlimited concurrent readers.
package dictionary

import (
	"strings"

	"txn-search/internal/models"
)

// Entry maps a keyword phrase to a canonical category and the merchant
// aliases commonly seen in card descriptors for that phrase.
type Entry struct {
	CategoryID string
	Aliases    []string
}

// Dictionary is an immutable keyword snapshot.
type Dictionary struct {
	entries map[string]Entry
}

// Load builds the built-in dictionary snapshot.
func Load() *Dictionary {
	return &Dictionary{entries: initEntries()}
}

// Lookup resolves a phrase to its dictionary entry. Matching is
// case-insensitive and ignores punctuation.
func (d *Dictionary) Lookup(phrase string) (Entry, bool) {
	entry, ok := d.entries[normalizeKey(phrase)]
	return entry, ok
}

// ExpandCategories resolves a list of phrases into category identifiers and
// merchant aliases. Order follows the input; duplicates are dropped.
// Phrases that are already valid category identifiers pass through
// unchanged; unknown phrases are skipped for categories but still usable as
// merchant keywords by the caller.
func (d *Dictionary) ExpandCategories(phrases []string) (categoryIDs, aliases []string) {
	seenCategory := make(map[string]bool)
	seenAlias := make(map[string]bool)

	appendAlias := func(alias string) {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" || seenAlias[alias] {
			return
		}
		seenAlias[alias] = true
		aliases = append(aliases, alias)
	}

	for _, phrase := range phrases {
		if models.IsValidCategory(phrase) {
			if !seenCategory[phrase] {
				seenCategory[phrase] = true
				categoryIDs = append(categoryIDs, phrase)
			}
			continue
		}

		entry, ok := d.Lookup(phrase)
		if !ok {
			continue
		}
		if !seenCategory[entry.CategoryID] {
			seenCategory[entry.CategoryID] = true
			categoryIDs = append(categoryIDs, entry.CategoryID)
		}
		appendAlias(phrase)
		for _, alias := range entry.Aliases {
			appendAlias(alias)
		}
	}

	return categoryIDs, aliases
}

// ExpandMerchants resolves merchant phrases into the alias lists used for
// fuzzy text matching. The phrase itself is always included.
func (d *Dictionary) ExpandMerchants(phrases []string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		out = append(out, term)
	}

	for _, phrase := range phrases {
		add(phrase)
		if entry, ok := d.Lookup(phrase); ok {
			for _, alias := range entry.Aliases {
				add(alias)
			}
		}
	}

	return out
}

// normalizeKey normalizes phrases for dictionary matching
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "&", "")
	return s
}

// initEntries initializes the keyword to category/alias mapping
func initEntries() map[string]Entry {
	return map[string]Entry{
		// Coffee & Tea
		"coffee": {CategoryID: models.CategoryCoffeeTea, Aliases: []string{"starbucks", "sbux", "peets", "blue bottle", "dunkin", "philz"}},
		"tea":    {CategoryID: models.CategoryCoffeeTea, Aliases: []string{"starbucks", "peets", "boba"}},

		// Groceries
		"groceries": {CategoryID: models.CategoryGroceries, Aliases: []string{"walmart", "kroger", "safeway", "whole foods", "trader joes", "costco", "aldi"}},
		"grocery":   {CategoryID: models.CategoryGroceries, Aliases: []string{"walmart", "kroger", "safeway", "whole foods", "trader joes", "costco", "aldi"}},

		// Dining
		"dining":     {CategoryID: models.CategoryDining, Aliases: []string{"mcdonalds", "chipotle", "subway", "taco bell", "panera", "doordash", "grubhub"}},
		"restaurant": {CategoryID: models.CategoryDining, Aliases: []string{"mcdonalds", "chipotle", "panera", "olive garden"}},
		"fast food":  {CategoryID: models.CategoryDining, Aliases: []string{"mcdonalds", "taco bell", "subway", "chick fil a", "five guys"}},
		"takeout":    {CategoryID: models.CategoryDining, Aliases: []string{"doordash", "grubhub", "ubereats", "postmates"}},

		// Transportation
		"gas":       {CategoryID: models.CategoryTransportation, Aliases: []string{"shell", "chevron", "exxon", "bp", "mobil"}},
		"fuel":      {CategoryID: models.CategoryTransportation, Aliases: []string{"shell", "chevron", "exxon", "bp"}},
		"rideshare": {CategoryID: models.CategoryTransportation, Aliases: []string{"uber", "lyft"}},
		"taxi":      {CategoryID: models.CategoryTransportation, Aliases: []string{"uber", "lyft", "curb"}},
		"transit":   {CategoryID: models.CategoryTransportation, Aliases: []string{"metro", "amtrak", "bart", "mta"}},
		"parking":   {CategoryID: models.CategoryTransportation, Aliases: []string{"parkmobile", "spothero"}},

		// Entertainment
		"streaming":     {CategoryID: models.CategoryEntertainment, Aliases: []string{"netflix", "spotify", "hulu", "disney", "hbo", "max"}},
		"movies":        {CategoryID: models.CategoryEntertainment, Aliases: []string{"amc", "cinemark", "regal", "fandango"}},
		"entertainment": {CategoryID: models.CategoryEntertainment, Aliases: []string{"netflix", "spotify", "amc", "hulu", "steam"}},
		"music":         {CategoryID: models.CategoryEntertainment, Aliases: []string{"spotify", "apple music", "tidal"}},

		// Shopping
		"shopping": {CategoryID: models.CategoryShopping, Aliases: []string{"amazon", "target", "best buy", "ebay", "etsy"}},
		"clothes":  {CategoryID: models.CategoryShopping, Aliases: []string{"gap", "nike", "nordstrom", "macys", "uniqlo"}},
		"hardware": {CategoryID: models.CategoryShopping, Aliases: []string{"home depot", "lowes", "ace hardware"}},

		// Bills & Utilities
		"utilities": {CategoryID: models.CategoryBillsUtilities, Aliases: []string{"pge", "edison", "comcast", "xfinity"}},
		"phone":     {CategoryID: models.CategoryBillsUtilities, Aliases: []string{"att", "verizon", "tmobile"}},
		"internet":  {CategoryID: models.CategoryBillsUtilities, Aliases: []string{"comcast", "xfinity", "spectrum"}},
		"bills":     {CategoryID: models.CategoryBillsUtilities, Aliases: []string{"att", "verizon", "comcast", "pge"}},

		// Healthcare
		"pharmacy":   {CategoryID: models.CategoryHealthcare, Aliases: []string{"cvs", "walgreens", "rite aid"}},
		"healthcare": {CategoryID: models.CategoryHealthcare, Aliases: []string{"cvs", "walgreens", "kaiser"}},
		"doctor":     {CategoryID: models.CategoryHealthcare, Aliases: []string{"kaiser", "one medical"}},

		// Travel
		"flights": {CategoryID: models.CategoryTravel, Aliases: []string{"delta", "united", "southwest", "american airlines", "jetblue"}},
		"hotels":  {CategoryID: models.CategoryTravel, Aliases: []string{"marriott", "hilton", "hyatt", "airbnb"}},
		"travel":  {CategoryID: models.CategoryTravel, Aliases: []string{"delta", "united", "marriott", "hilton", "airbnb", "expedia"}},

		// ATM / Cash
		"atm":  {CategoryID: models.CategoryATMCash, Aliases: []string{"atm withdrawal", "cash withdrawal"}},
		"cash": {CategoryID: models.CategoryATMCash, Aliases: []string{"atm withdrawal", "cash withdrawal"}},

		// Income
		"salary":  {CategoryID: models.CategoryIncome, Aliases: []string{"direct deposit", "payroll"}},
		"payroll": {CategoryID: models.CategoryIncome, Aliases: []string{"direct deposit", "payroll"}},
		"income":  {CategoryID: models.CategoryIncome, Aliases: []string{"direct deposit", "payroll", "interest payment"}},

		// Fees
		"fees": {CategoryID: models.CategoryFees, Aliases: []string{"service fee", "overdraft fee", "late fee"}},
	}
}
