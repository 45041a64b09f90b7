package entity

// ChartKind tells the renderer which figure to draw.
type ChartKind string

const (
	ChartGroupedBar    ChartKind = "grouped-bar"
	ChartBar           ChartKind = "bar"
	ChartHorizontalBar ChartKind = "horizontal-bar"
	ChartPie           ChartKind = "pie"
	ChartHeatMap       ChartKind = "heat-map"
)

const NoDataPlaceholder = "No Data Available"

// ChartDataset is a chart definition plus the numbers it displays. Exactly
// one of Series or Matrix is populated unless NoData is set.
type ChartDataset struct {
	ID     string
	Title  string
	Kind   ChartKind
	XLabel string
	YLabel string
	Series []Series
	Matrix *Matrix
	NoData bool
}

type KPI struct {
	TotalAppointments int
	TotalNoShows      int
	// NoShowRate is a percentage in [0, 100].
	NoShowRate float64
	AvgGapDays float64
}

// DashboardState is everything the UI needs after one filter change.
type DashboardState struct {
	Selection FilterSelection
	Empty     bool
	KPI       KPI
	Charts    []ChartDataset
}
