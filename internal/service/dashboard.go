package service

import (
	"fmt"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/sourcegraph/conc/iter"
)

const topNeighbourhoods = 10

// Chart identifiers, in display order.
const (
	ChartAppointmentsByDay   = "appointments_by_day"
	ChartAppointmentsByMonth = "appointments_by_month"
	ChartAppointmentsByYear  = "appointments_by_year"
	ChartShowVsNoShow        = "show_vs_no_show"
	ChartNoShowByAgeGender   = "no_show_by_age_gender"
	ChartTopNeighbourhoods   = "top_neighbourhoods"
	ChartNoShowByCondition   = "no_show_by_condition"
	ChartNoShowByGapGroup    = "no_show_by_gap_group"
	ChartNoShowBySMS         = "no_show_by_sms"
	ChartNoShowRateHeatMap   = "no_show_rate_heat_map"
)

// chartSpec describes one dashboard chart and how to compute its data.
type chartSpec struct {
	id      string
	title   string
	kind    entity.ChartKind
	xLabel  string
	yLabel  string
	compute func(g *Aggregator, view *entity.Table) ([]entity.Series, *entity.Matrix, error)
}

var chartSpecs = []chartSpec{
	{
		id: ChartAppointmentsByDay, title: "Appointments & No-shows by Day", kind: entity.ChartGroupedBar,
		xLabel: "Day of the Week", yLabel: "Number of Appointments",
		compute: appointmentsAndNoShows(entity.DimDayOfWeek),
	},
	{
		id: ChartAppointmentsByMonth, title: "Appointments & No-shows by Month", kind: entity.ChartGroupedBar,
		xLabel: "Month", yLabel: "Number of Appointments",
		compute: appointmentsAndNoShows(entity.DimMonth),
	},
	{
		id: ChartAppointmentsByYear, title: "Appointments & No-shows by Year", kind: entity.ChartGroupedBar,
		xLabel: "Year", yLabel: "Number of Appointments",
		compute: appointmentsAndNoShows(entity.DimYear),
	},
	{
		id: ChartShowVsNoShow, title: "No-show vs. Show-up Rates", kind: entity.ChartPie,
		compute: single(func(g *Aggregator, v *entity.Table) (entity.Series, error) {
			return g.GroupBy(v, entity.DimNoShow, entity.AggCount)
		}),
	},
	{
		id: ChartNoShowByAgeGender, title: "No-show by Age Group", kind: entity.ChartGroupedBar,
		xLabel: "Age Group", yLabel: "No-show Count",
		compute: matrix(entity.DimAgeGroup, entity.DimGender, entity.AggSum),
	},
	{
		id: ChartTopNeighbourhoods, title: "Top 10 No-show by Neighborhood", kind: entity.ChartHorizontalBar,
		xLabel: "Neighborhood", yLabel: "No-show Count",
		compute: single(func(g *Aggregator, v *entity.Table) (entity.Series, error) {
			return g.TopN(v, entity.DimNeighbourhood, entity.AggSum, topNeighbourhoods)
		}),
	},
	{
		id: ChartNoShowByCondition, title: "No-show by Chronic Conditions", kind: entity.ChartBar,
		xLabel: "Condition", yLabel: "No-show Count",
		compute: single(func(g *Aggregator, v *entity.Table) (entity.Series, error) {
			return g.ConditionNoShows(v), nil
		}),
	},
	{
		id: ChartNoShowByGapGroup, title: "No-show by Gap Days", kind: entity.ChartBar,
		xLabel: "Gap Days Group", yLabel: "No-show Count",
		compute: single(func(g *Aggregator, v *entity.Table) (entity.Series, error) {
			return g.GroupBy(v, entity.DimGapGroup, entity.AggSum)
		}),
	},
	{
		id: ChartNoShowBySMS, title: "No-show by SMS Received", kind: entity.ChartBar,
		xLabel: "SMS Received", yLabel: "No-show Count",
		compute: single(func(g *Aggregator, v *entity.Table) (entity.Series, error) {
			return g.GroupBy(v, entity.DimSMSReceived, entity.AggSum)
		}),
	},
	{
		id: ChartNoShowRateHeatMap, title: "No-show Rate by Day of Week & Age Group", kind: entity.ChartHeatMap,
		xLabel: "Day of Week", yLabel: "Age Group",
		compute: matrix(entity.DimAgeGroup, entity.DimDayOfWeek, entity.AggMean),
	},
}

func appointmentsAndNoShows(dim entity.Dimension) func(*Aggregator, *entity.Table) ([]entity.Series, *entity.Matrix, error) {
	return func(g *Aggregator, view *entity.Table) ([]entity.Series, *entity.Matrix, error) {
		appointments, err := g.GroupBy(view, dim, entity.AggCount)
		if err != nil {
			return nil, nil, err
		}
		noShows, err := g.GroupBy(view, dim, entity.AggSum)
		if err != nil {
			return nil, nil, err
		}
		appointments.Name = "Appointments"
		noShows.Name = "No-show"
		return []entity.Series{appointments, noShows}, nil, nil
	}
}

func single(fn func(*Aggregator, *entity.Table) (entity.Series, error)) func(*Aggregator, *entity.Table) ([]entity.Series, *entity.Matrix, error) {
	return func(g *Aggregator, view *entity.Table) ([]entity.Series, *entity.Matrix, error) {
		s, err := fn(g, view)
		if err != nil {
			return nil, nil, err
		}
		return []entity.Series{s}, nil, nil
	}
}

func matrix(rowDim, colDim entity.Dimension, kind entity.AggregationKind) func(*Aggregator, *entity.Table) ([]entity.Series, *entity.Matrix, error) {
	return func(g *Aggregator, view *entity.Table) ([]entity.Series, *entity.Matrix, error) {
		m, err := g.CrossTab(view, rowDim, colDim, kind)
		if err != nil {
			return nil, nil, err
		}
		return nil, &m, nil
	}
}

// Dashboard recomputes the KPIs and chart datasets for a filter selection.
// It holds no state besides its collaborators and never mutates the base table.
type Dashboard struct {
	filter     *FilterEngine
	aggregator *Aggregator
}

func NewDashboard(filter *FilterEngine, aggregator *Aggregator) *Dashboard {
	return &Dashboard{
		filter:     filter,
		aggregator: aggregator,
	}
}

// ComputeDashboardState is Dashboard.Compute with the default collaborators.
func ComputeDashboardState(base *entity.Table, sel entity.FilterSelection) (*entity.DashboardState, error) {
	return NewDashboard(NewFilterEngine(), NewAggregator()).Compute(base, sel)
}

// Compute filters base by sel and builds the dashboard state. An empty view
// yields zero KPIs and a no-data placeholder for every chart. The only error is
// a SchemaError from a malformed chart definition.
func (d *Dashboard) Compute(base *entity.Table, sel entity.FilterSelection) (*entity.DashboardState, error) {
	view := d.filter.Apply(base, sel)
	state := &entity.DashboardState{
		Selection: sel,
		Charts:    make([]entity.ChartDataset, 0, len(chartSpecs)),
	}

	if view.IsEmpty() {
		state.Empty = true
		for _, spec := range chartSpecs {
			chart := spec.dataset()
			chart.NoData = true
			state.Charts = append(state.Charts, chart)
		}
		return state, nil
	}

	state.KPI = ComputeKPI(view)

	// Charts only read the view. Results keep chartSpecs order.
	charts, err := iter.MapErr(chartSpecs, func(spec *chartSpec) (entity.ChartDataset, error) {
		chart := spec.dataset()
		series, m, err := spec.compute(d.aggregator, view)
		if err != nil {
			return chart, fmt.Errorf("chart %s: %w", spec.id, err)
		}
		chart.Series = series
		chart.Matrix = m
		return chart, nil
	})
	if err != nil {
		return nil, err
	}
	state.Charts = charts
	return state, nil
}

func (s chartSpec) dataset() entity.ChartDataset {
	return entity.ChartDataset{
		ID:     s.id,
		Title:  s.title,
		Kind:   s.kind,
		XLabel: s.xLabel,
		YLabel: s.yLabel,
	}
}

// ComputeKPI returns the four summary numbers of view; all zero when view is empty.
func ComputeKPI(view *entity.Table) entity.KPI {
	var kpi entity.KPI
	if view.IsEmpty() {
		return kpi
	}

	var gapTotal int
	view.Each(func(a entity.Appointment) {
		kpi.TotalAppointments++
		if a.NoShow {
			kpi.TotalNoShows++
		}
		gapTotal += a.GapDays
	})

	kpi.NoShowRate = float64(kpi.TotalNoShows) / float64(kpi.TotalAppointments) * 100
	kpi.AvgGapDays = float64(gapTotal) / float64(kpi.TotalAppointments)
	return kpi
}
