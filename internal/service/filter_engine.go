package service

import (
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
)

// FilterEngine narrows a table to the rows matching a filter selection.
type FilterEngine struct{}

func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply keeps the rows satisfying every provided predicate of sel. Cleared
// predicates impose no constraint. A selection that matches nothing yields an
// empty table, not an error.
func (f *FilterEngine) Apply(view *entity.Table, sel entity.FilterSelection) *entity.Table {
	return view.Filter(func(a entity.Appointment) bool {
		return Matches(a, sel)
	})
}

// Matches reports whether a satisfies the conjunction of the set predicates.
func Matches(a entity.Appointment, sel entity.FilterSelection) bool {
	if sel.DayOfWeek != "" && a.DayOfWeek != sel.DayOfWeek {
		return false
	}
	if sel.Neighbourhood != "" && a.Neighbourhood != sel.Neighbourhood {
		return false
	}
	if sel.AgeGroup != "" && a.AgeGroup != sel.AgeGroup {
		return false
	}
	if sel.GapGroup != "" && a.GapGroup != sel.GapGroup {
		return false
	}
	return true
}

// Options lists the values each filter can take on base.
func (f *FilterEngine) Options(base *entity.Table) entity.FilterOptions {
	first, last := base.AppointmentRange()
	return entity.FilterOptions{
		Days:           append([]string(nil), entity.WeekOrder...),
		Neighbourhoods: base.Neighbourhoods(),
		AgeGroups:      entity.AgeGroups.Labels(),
		GapGroups:      entity.GapGroups.Labels(),
		FirstDay:       first,
		LastDay:        last,
	}
}
