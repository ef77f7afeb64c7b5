package utils

import (
	"cfs-service/internal/pkg/cfs"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeBasicDetails(t *testing.T) {
	t.Run("Trims Keys And Values", func(t *testing.T) {
		sanitized := SanitizeBasicDetails(map[string]string{"  mrno ": "  12345  ", "name": "Jane Doe "})

		assert.Equal(t, map[string]string{"mrno": "12345", "name": "Jane Doe"}, sanitized, "keys and values should be trimmed")
	})

	t.Run("Drops Empty Entries", func(t *testing.T) {
		sanitized := SanitizeBasicDetails(map[string]string{"ward": "   ", "  ": "orphan", "age": "81"})

		assert.Equal(t, map[string]string{"age": "81"}, sanitized, "blank keys and values should be dropped")
	})

	t.Run("Nil Input", func(t *testing.T) {
		sanitized := SanitizeBasicDetails(nil)

		assert.NotNil(t, sanitized, "nil input should give an empty map")
		assert.Empty(t, sanitized)
	})
}

func TestSanitizeAnswers(t *testing.T) {
	t.Run("Lowercases Keys Only", func(t *testing.T) {
		sanitized, err := SanitizeAnswers(map[string]string{" Heart_Disease ": " 1 ", "other_conditions": "  Gout "})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"heart_disease": "1", "other_conditions": "Gout"}, sanitized, "free text should keep its case")
	})

	t.Run("Keeps Empty Values", func(t *testing.T) {
		sanitized, err := SanitizeAnswers(map[string]string{"dress": " "})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"dress": ""}, sanitized, "empty values are left for validation to reject")
	})

	t.Run("Rejects Keys Naming The Same Field", func(t *testing.T) {
		_, err := SanitizeAnswers(map[string]string{"Dress": "1", "dress": "0", " EAT": "0", "eat ": "1"})

		assert.True(t, errors.Is(err, cfs.ErrInvalidValue))
		assert.Equal(t, []cfs.Field{cfs.FieldDress, cfs.FieldEat}, cfs.ErrorFields(err))
	})
}

func TestMergeDetails(t *testing.T) {
	base := map[string]string{"mrno": "1", "ward": "A"}
	merged := MergeDetails(base, map[string]string{"ward": " B ", "disposition": "", "dnr_order": "Yes"})

	assert.Equal(t, map[string]string{"mrno": "1", "ward": "B", "dnr_order": "Yes"}, merged)
	assert.Equal(t, "A", base["ward"], "base should not be modified")
}
