package service

import (
	"fmt"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

const kpiSheet = "KPI"

// WorkbookExporter writes a dashboard state as an XLSX workbook: one KPI
// sheet followed by one sheet per chart, named after the chart id.
type WorkbookExporter struct{}

func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

func (e *WorkbookExporter) Export(state *entity.DashboardState) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", kpiSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeFrame(f, kpiSheet, kpiFrame(state)); err != nil {
		return nil, err
	}

	for _, chart := range state.Charts {
		if _, err := f.NewSheet(chart.ID); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", chart.ID, err)
		}
		if err := writeFrame(f, chart.ID, chartFrame(chart)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func kpiFrame(state *entity.DashboardState) dataframe.DataFrame {
	sel := state.Selection
	return dataframe.New(
		series.New([]string{
			"Total Appointments", "Total No-shows", "No-show Rate (%)", "Avg Gap Days",
			"Day of Week", "Neighbourhood", "Age Group", "Gap Group",
		}, series.String, "Metric"),
		series.New([]string{
			fmt.Sprint(state.KPI.TotalAppointments),
			fmt.Sprint(state.KPI.TotalNoShows),
			fmt.Sprintf("%.2f", state.KPI.NoShowRate),
			fmt.Sprintf("%.2f", state.KPI.AvgGapDays),
			sel.DayOfWeek, sel.Neighbourhood, sel.AgeGroup, sel.GapGroup,
		}, series.String, "Value"),
	)
}

// chartFrame lays a chart out as a table: category labels in the first column
// and one column per series, or the matrix with its row labels.
func chartFrame(chart entity.ChartDataset) dataframe.DataFrame {
	switch {
	case chart.NoData:
		return dataframe.New(series.New([]string{entity.NoDataPlaceholder}, series.String, chart.Title))
	case chart.Matrix != nil:
		m := chart.Matrix
		cols := []series.Series{series.New(m.Rows, series.String, string(m.RowDimension))}
		for j, c := range m.Columns {
			values := make([]float64, len(m.Rows))
			for i := range m.Rows {
				values[i] = m.Values[i][j]
			}
			cols = append(cols, series.New(values, series.Float, c))
		}
		return dataframe.New(cols...)
	case len(chart.Series) > 0:
		cols := []series.Series{series.New(chart.Series[0].Labels(), series.String, "Label")}
		for _, s := range chart.Series {
			cols = append(cols, series.New(s.Values(), series.Float, s.Name))
		}
		return dataframe.New(cols...)
	default:
		return dataframe.New(series.New([]string{}, series.String, "Label"))
	}
}

func writeFrame(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("build sheet %s: %w", sheet, df.Err)
	}

	colNames := df.Names()
	for i, name := range colNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		for colIdx, colName := range colNames {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, df.Col(colName).Val(rowIdx)); err != nil {
				return fmt.Errorf("write sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}
