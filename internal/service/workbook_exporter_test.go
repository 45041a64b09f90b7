package service

import (
	"bytes"
	"testing"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWorkbookExporterExport(t *testing.T) {
	state, err := ComputeDashboardState(threeRowTable(), entity.FilterSelection{DayOfWeek: "Monday"})
	require.NoError(t, err)

	data, err := NewWorkbookExporter().Export(state)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, append([]string{"KPI"}, chartOrder...), f.GetSheetList())

	kpi, err := f.GetRows("KPI")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, kpi[0])
	assert.Equal(t, []string{"Total Appointments", "2"}, kpi[1])
	assert.Equal(t, []string{"No-show Rate (%)", "50.00"}, kpi[3])
	assert.Equal(t, []string{"Day of Week", "Monday"}, kpi[5])

	byDay, err := f.GetRows(ChartAppointmentsByDay)
	require.NoError(t, err)
	assert.Equal(t, []string{"Label", "Appointments", "No-show"}, byDay[0])
	assert.Equal(t, []string{"Monday", "2", "1"}, byDay[3])

	heat, err := f.GetRows(ChartNoShowRateHeatMap)
	require.NoError(t, err)
	assert.Equal(t, append([]string{string(entity.DimAgeGroup)}, entity.WeekOrder...), heat[0])
	assert.Len(t, heat, 1+len(entity.AgeGroups))
}

func TestWorkbookExporterEmptyState(t *testing.T) {
	state, err := ComputeDashboardState(threeRowTable(), entity.FilterSelection{DayOfWeek: "Friday"})
	require.NoError(t, err)

	data, err := NewWorkbookExporter().Export(state)
	require.NoError(t, err)

	f := openWorkbook(t, data)
	rows, err := f.GetRows(ChartTopNeighbourhoods)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{entity.NoDataPlaceholder}, rows[1])
}
