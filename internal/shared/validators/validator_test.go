package validators_test

import (
	"testing"

	"cdr-metrics/internal/shared/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportSettings struct {
	Window windowSettings `validate:"required"`
}

type windowSettings struct {
	TimeZone  string `validate:"required"`
	StartDate string `validate:"required,datetime=2006-01-02"`
	Days      int    `validate:"min=1"`
}

func TestFormatFieldError_ReadableFieldPathsAndConstraints(t *testing.T) {
	t.Parallel()

	err := validators.New().Struct(&reportSettings{
		Window: windowSettings{StartDate: "10/03/2026"},
	})
	require.Error(t, err)

	ve, ok := err.(validators.ValidationErrors)
	require.True(t, ok)

	var got []string
	for _, e := range ve {
		got = append(got, validators.FormatFieldError(e))
	}

	assert.Contains(t, got, "window.timezone (required)")
	assert.Contains(t, got, "window.startdate (format=2006-01-02)")
	assert.Contains(t, got, "window.days (min=1)")
}
