package models

// MerchantInfo describes a merchant in the sample-data generator pool
type MerchantInfo struct {
	Name       string
	CategoryID string
}
