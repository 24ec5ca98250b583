package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountIDRequired   = errors.New("account ID is required")
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrDateRequired        = errors.New("transaction date is required")
)

// Transaction represents a bank transaction as stored in the transaction
// store. The search core treats transactions as read-only.
type Transaction struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	MerchantName       string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	NormalizedMerchant string          `gorm:"type:varchar(255);index" json:"normalized_merchant,omitempty"`
	CategoryID         string          `gorm:"type:varchar(50);index" json:"category_id,omitempty"`
	CategoryConfidence float64         `gorm:"default:0" json:"category_confidence"`
	CategorySource     string          `gorm:"type:varchar(20)" json:"category_source,omitempty"`
	Reviewed           bool            `gorm:"not null;default:false;index" json:"reviewed"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	if t.NormalizedMerchant == "" && t.MerchantName != "" {
		t.NormalizedMerchant = NormalizeMerchant(t.MerchantName)
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	if t.NormalizedMerchant == "" && t.MerchantName != "" {
		t.NormalizedMerchant = NormalizeMerchant(t.MerchantName)
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountIDRequired
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}
	if t.Date.IsZero() {
		return ErrDateRequired
	}
	if t.CategoryID != "" && !IsValidCategory(t.CategoryID) {
		return errors.New("unknown category identifier")
	}
	return nil
}

// IsCategorized returns true if a category has been assigned
func (t *Transaction) IsCategorized() bool {
	return t.CategoryID != ""
}

// IsDebit returns true for money-out transactions (negative amounts)
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// NormalizeMerchant lowercases a merchant name and strips punctuation so
// card-network suffixes ("STARBUCKS #45678 SAN FRANCISCO") collapse onto a
// form suitable for substring matching.
func NormalizeMerchant(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
