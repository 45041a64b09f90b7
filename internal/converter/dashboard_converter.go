package converter

import (
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/dto"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

// FilterRequestToSelection converts the filter DTO to a domain selection
func FilterRequestToSelection(req *dto.DashboardFilterRequest) entity.FilterSelection {
	if req == nil {
		return entity.FilterSelection{}
	}
	return entity.FilterSelection{
		DayOfWeek:     req.Day,
		Neighbourhood: req.Neighbourhood,
		AgeGroup:      req.AgeGroup,
		GapGroup:      req.GapGroup,
	}
}

func SelectionToFilterRequest(sel entity.FilterSelection) dto.DashboardFilterRequest {
	return dto.DashboardFilterRequest{
		Day:           sel.DayOfWeek,
		Neighbourhood: sel.Neighbourhood,
		AgeGroup:      sel.AgeGroup,
		GapGroup:      sel.GapGroup,
	}
}

// KPIToResponse formats the KPI cards. An empty view reads "0", "0", "0%", "0".
func KPIToResponse(kpi entity.KPI, empty bool) dto.KPIResponse {
	resp := dto.KPIResponse{
		TotalAppointments: kpi.TotalAppointments,
		TotalNoShows:      kpi.TotalNoShows,
		NoShowRate:        kpi.NoShowRate,
		AvgGapDays:        kpi.AvgGapDays,
	}

	if empty {
		resp.TotalAppointmentsText = "0"
		resp.TotalNoShowsText = "0"
		resp.NoShowRateText = "0%"
		resp.AvgGapDaysText = "0"
		return resp
	}

	resp.TotalAppointmentsText = printer.Sprintf("%d", kpi.TotalAppointments)
	resp.TotalNoShowsText = printer.Sprintf("%d", kpi.TotalNoShows)
	resp.NoShowRateText = printer.Sprintf("%.2f%%", kpi.NoShowRate)
	resp.AvgGapDaysText = printer.Sprintf("%.2f", kpi.AvgGapDays)
	return resp
}

func ChartToResponse(chart entity.ChartDataset) dto.ChartResponse {
	resp := dto.ChartResponse{
		ID:     chart.ID,
		Title:  chart.Title,
		Kind:   string(chart.Kind),
		XLabel: chart.XLabel,
		YLabel: chart.YLabel,
		NoData: chart.NoData,
	}

	if chart.NoData {
		resp.Message = entity.NoDataPlaceholder
		return resp
	}

	for _, s := range chart.Series {
		resp.Series = append(resp.Series, dto.SeriesResponse{
			Name:   s.Name,
			Labels: s.Labels(),
			Values: s.Values(),
		})
	}

	if chart.Matrix != nil {
		resp.Matrix = &dto.MatrixResponse{
			Rows:    chart.Matrix.Rows,
			Columns: chart.Matrix.Columns,
			Values:  chart.Matrix.Values,
		}
	}

	return resp
}

// DashboardStateToResponse converts a DashboardState entity to DashboardResponse DTO
func DashboardStateToResponse(state *entity.DashboardState) *dto.DashboardResponse {
	if state == nil {
		return nil
	}

	resp := &dto.DashboardResponse{
		Filters: SelectionToFilterRequest(state.Selection),
		Empty:   state.Empty,
		KPI:     KPIToResponse(state.KPI, state.Empty),
		Charts:  make([]dto.ChartResponse, 0, len(state.Charts)),
	}
	for _, chart := range state.Charts {
		resp.Charts = append(resp.Charts, ChartToResponse(chart))
	}
	return resp
}

func FilterOptionsToResponse(opts entity.FilterOptions) *dto.FilterOptionsResponse {
	resp := &dto.FilterOptionsResponse{
		Days:           opts.Days,
		Neighbourhoods: opts.Neighbourhoods,
		AgeGroups:      opts.AgeGroups,
		GapGroups:      opts.GapGroups,
	}
	if !opts.FirstDay.IsZero() {
		resp.FirstDay = opts.FirstDay.Format(dateLayout)
	}
	if !opts.LastDay.IsZero() {
		resp.LastDay = opts.LastDay.Format(dateLayout)
	}
	return resp
}
