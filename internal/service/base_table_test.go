package service

import (
	"context"
	"errors"
	"testing"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentRepository struct {
	df  dataframe.DataFrame
	err error
}

func (r *stubAppointmentRepository) Load(context.Context) (dataframe.DataFrame, error) {
	return r.df, r.err
}

func withIntAge(t *testing.T, df dataframe.DataFrame) dataframe.DataFrame {
	t.Helper()
	ages, err := df.Col(entity.ColAge).Int()
	require.NoError(t, err)
	df = df.Mutate(series.New(ages, series.Int, entity.ColAge))
	require.NoError(t, df.Err)
	return df
}

func TestBuildBaseTable(t *testing.T) {
	df := withIntAge(t, rawFrame(t,
		rawRow{entity.ColAppointmentID: "1", entity.ColAge: "-1"},
		rawRow{entity.ColAppointmentID: "2", entity.ColAge: "0"},
		rawRow{entity.ColAppointmentID: "3", entity.ColAge: "100"},
		rawRow{entity.ColAppointmentID: "4", entity.ColAge: "115"},
	))

	base, err := BuildBaseTable(context.Background(), &stubAppointmentRepository{df: df}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "3"}, ids(base))
	assert.Equal(t, "0-19", base.Row(0).AgeGroup)
	assert.Equal(t, "60+", base.Row(1).AgeGroup)
}

func TestBuildBaseTableLoadError(t *testing.T) {
	loadErr := &entity.LoadError{Source: "missing.csv", Reason: "cannot open dataset"}

	base, err := BuildBaseTable(context.Background(), &stubAppointmentRepository{err: loadErr}, testLogger())

	assert.Nil(t, base)
	var target *entity.LoadError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "missing.csv", target.Source)
}

func TestBuildBaseTableParseError(t *testing.T) {
	df := withIntAge(t, rawFrame(t, rawRow{entity.ColScheduledDay: "yesterday"}))

	_, err := BuildBaseTable(context.Background(), &stubAppointmentRepository{df: df}, testLogger())

	var parseErr *entity.ParseError
	assert.True(t, errors.As(err, &parseErr))
}
