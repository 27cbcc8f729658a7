package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.KindRequired.Violation("title"))
		assert.Equal(t, "validation failed: title: field is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors for same field", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.KindRequired.Violation("price"))
		errs.Add(validator.KindPositive.Violation("price"))

		msg := errs.Error()
		assert.Contains(t, msg, "price: field is required")
		assert.Contains(t, msg, "price: must be a positive number")
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.KindMaxLength.Violation("title"))
	errs.Add(validator.KindRequired.Violation("price"))
	errs.Add(validator.KindPositive.Violation("price"))

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("title"))
		assert.True(t, errs.Has("price"))
		assert.False(t, errs.Has("description"))
	})

	t.Run("has kind", func(t *testing.T) {
		assert.True(t, errs.HasKind("title", validator.KindMaxLength))
		assert.False(t, errs.HasKind("title", validator.KindRequired))
		assert.True(t, errs.HasKind("price", validator.KindPositive))
	})

	t.Run("get returns messages in order", func(t *testing.T) {
		assert.Equal(t, []string{"field is required", "must be a positive number"}, errs.Get("price"))
		assert.Empty(t, errs.Get("description"))
	})

	t.Run("get errors", func(t *testing.T) {
		got := errs.GetErrors("price")
		require.Len(t, got, 2)
		assert.Equal(t, validator.KindRequired, got[0].Kind)
		assert.Equal(t, validator.KindPositive, got[1].Kind)
	})

	t.Run("fields are unique and ordered by first failure", func(t *testing.T) {
		assert.Equal(t, []string{"title", "price"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		var none validator.ValidationErrors
		assert.True(t, none.IsEmpty())
		assert.False(t, errs.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.KindRequired.Rule("title", true),
			validator.KindPositive.Rule("price", true),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects only failed rules", func(t *testing.T) {
		err := validator.Apply(
			validator.KindRequired.Rule("title", true),
			validator.KindMaxLength.Rule("title", false),
			validator.KindPositive.Rule("price", false),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, validator.KindMaxLength.Violation("title"), errs[0])
		assert.Equal(t, validator.KindPositive.Violation("price"), errs[1])
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{validator.KindRequired.Violation("title")}
		err := fmt.Errorf("course #1: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, inner, validator.ExtractValidationErrors(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}
