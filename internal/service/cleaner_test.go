package service

import (
	"testing"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanerDropsAgesOutsideRange(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c", "d", "e"}, series.String, entity.ColAppointmentID),
		series.New([]int{-1, 0, 45, 100, 101}, series.Int, entity.ColAge),
	)

	cleaned, dropped, err := NewCleaner().Clean(df)
	require.NoError(t, err)

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []string{"b", "c", "d"}, cleaned.Col(entity.ColAppointmentID).Records())
	assert.Equal(t, []string{"0", "45", "100"}, cleaned.Col(entity.ColAge).Records())
}

func TestCleanerKeepsCleanFrame(t *testing.T) {
	df := dataframe.New(series.New([]int{1, 2, 3}, series.Int, entity.ColAge))

	cleaned, dropped, err := NewCleaner().Clean(df)
	require.NoError(t, err)

	assert.Zero(t, dropped)
	assert.Equal(t, 3, cleaned.Nrow())
}

func TestCleanerMissingAgeColumn(t *testing.T) {
	df := dataframe.New(series.New([]string{"x"}, series.String, entity.ColGender))

	_, _, err := NewCleaner().Clean(df)
	assert.Error(t, err)
}
