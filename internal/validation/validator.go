package validation

import (
	"reflect"
	"strings"

	"txn-search/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_id", validateCategoryID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCategoryID validates that a category filter is either a registered
// category constant or the uncategorized sentinel
func validateCategoryID(fl validator.FieldLevel) bool {
	categoryID := fl.Field().String()
	if categoryID == "" {
		return false
	}

	if categoryID == models.CategoryUncategorized {
		return true
	}
	return models.IsValidCategory(categoryID)
}
