package dto

// Request DTOs

// DashboardFilterRequest carries the four optional dashboard filters.
// An empty field clears that filter.
type DashboardFilterRequest struct {
	Day           string `json:"day" validate:"omitempty,oneof=Saturday Sunday Monday Tuesday Wednesday Thursday Friday"`
	Neighbourhood string `json:"neighbourhood" validate:"omitempty,max=100"`
	AgeGroup      string `json:"age_group" validate:"omitempty,oneof=0-19 20-35 36-60 60+"`
	GapGroup      string `json:"gap_group" validate:"omitempty,oneof=0 1-2 3-5 6-10 11-30 30+"`
}

// Response DTOs

type KPIResponse struct {
	TotalAppointments int     `json:"total_appointments"`
	TotalNoShows      int     `json:"total_no_shows"`
	NoShowRate        float64 `json:"no_show_rate"`
	AvgGapDays        float64 `json:"avg_gap_days"`

	// Display strings as shown on the KPI cards
	TotalAppointmentsText string `json:"total_appointments_text"`
	TotalNoShowsText      string `json:"total_no_shows_text"`
	NoShowRateText        string `json:"no_show_rate_text"`
	AvgGapDaysText        string `json:"avg_gap_days_text"`
}

type SeriesResponse struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type MatrixResponse struct {
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

type ChartResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Kind    string           `json:"kind"`
	XLabel  string           `json:"x_label,omitempty"`
	YLabel  string           `json:"y_label,omitempty"`
	Series  []SeriesResponse `json:"series,omitempty"`
	Matrix  *MatrixResponse  `json:"matrix,omitempty"`
	NoData  bool             `json:"no_data"`
	Message string           `json:"message,omitempty"`
}

type DashboardResponse struct {
	Filters DashboardFilterRequest `json:"filters"`
	Empty   bool                   `json:"empty"`
	KPI     KPIResponse            `json:"kpi"`
	Charts  []ChartResponse        `json:"charts"`
}

type FilterOptionsResponse struct {
	Days           []string `json:"days"`
	Neighbourhoods []string `json:"neighbourhoods"`
	AgeGroups      []string `json:"age_groups"`
	GapGroups      []string `json:"gap_groups"`
	FirstDay       string   `json:"first_day"`
	LastDay        string   `json:"last_day"`
}
