package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filterRequest struct {
	Day           string `json:"day" validate:"omitempty,oneof=Saturday Sunday Monday"`
	Neighbourhood string `json:"neighbourhood" validate:"omitempty,max=5"`
	Token         string `validate:"required"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&filterRequest{Day: "Funday", Neighbourhood: strings.Repeat("x", 6)})
	require.Error(t, err)

	got := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"day":           "day must be one of: Saturday, Sunday, Monday",
		"neighbourhood": "neighbourhood must be at most 5 characters",
		"Token":         "Token is required",
	}, got)
}

func TestValidatePassesOnEmptyOptionalFields(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&filterRequest{Token: "t"}))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(errors.New("boom")))
}
