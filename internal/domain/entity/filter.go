package entity

import "time"

// FilterSelection is the current value of the four dashboard filters.
// An empty field means the filter is cleared.
type FilterSelection struct {
	DayOfWeek     string
	Neighbourhood string
	AgeGroup      string
	GapGroup      string
}

func (s FilterSelection) IsEmpty() bool {
	return s == FilterSelection{}
}

// FilterOptions lists the values the UI shell offers for each filter.
type FilterOptions struct {
	Days           []string
	Neighbourhoods []string
	AgeGroups      []string
	GapGroups      []string
	FirstDay       time.Time
	LastDay        time.Time
}
