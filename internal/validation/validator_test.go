package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type categoryFilter struct {
	CategoryID string `json:"category_id" validate:"omitempty,category_id"`
}

func TestValidateCategoryID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{"registered category", "COFFEE_TEA", false},
		{"another registered category", "GROCERIES", false},
		{"uncategorized sentinel", "uncategorized", false},
		{"unknown identifier", "NOT_A_CATEGORY", true},
		{"lowercase category rejected", "coffee_tea", true},
		{"uppercase sentinel rejected", "UNCATEGORIZED", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.GetValidate().Struct(categoryFilter{CategoryID: tt.category})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_OmitemptySkipsEmptyCategory(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.GetValidate().Struct(categoryFilter{}))
}

func TestValidator_FieldNamesUseJSONTags(t *testing.T) {
	v := NewValidator()

	err := v.GetValidate().Struct(categoryFilter{CategoryID: "bogus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category_id")
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	first := GetValidator()
	second := GetValidator()
	assert.Same(t, first, second)
}
