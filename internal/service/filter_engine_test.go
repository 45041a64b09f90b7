package service

import (
	"testing"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ids(t *entity.Table) []string {
	var out []string
	t.Each(func(a entity.Appointment) { out = append(out, a.AppointmentID) })
	return out
}

func TestFilterEngineApply(t *testing.T) {
	base := threeRowTable()
	engine := NewFilterEngine()

	tests := []struct {
		name string
		sel  entity.FilterSelection
		want []string
	}{
		{"no predicates", entity.FilterSelection{}, []string{"A", "B", "C"}},
		{"day", entity.FilterSelection{DayOfWeek: "Monday"}, []string{"A", "B"}},
		{"age group", entity.FilterSelection{AgeGroup: "20-35"}, []string{"A", "C"}},
		{"gap group", entity.FilterSelection{GapGroup: "30+"}, []string{"C"}},
		{"neighbourhood", entity.FilterSelection{Neighbourhood: "CENTRO"}, []string{"A", "B", "C"}},
		{"conjunction", entity.FilterSelection{DayOfWeek: "Monday", AgeGroup: "20-35"}, []string{"A"}},
		{"no match", entity.FilterSelection{DayOfWeek: "Sunday"}, nil},
		{"unknown neighbourhood", entity.FilterSelection{Neighbourhood: "NOWHERE"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := engine.Apply(base, tt.sel)
			assert.Equal(t, tt.want, ids(view))
		})
	}
}

func TestFilterEngineApplyIsIdempotent(t *testing.T) {
	base := threeRowTable()
	engine := NewFilterEngine()
	sel := entity.FilterSelection{DayOfWeek: "Monday", GapGroup: "1-2"}

	once := engine.Apply(base, sel)
	twice := engine.Apply(once, sel)

	assert.Equal(t, once.Rows(), twice.Rows())
}

func TestFilterEngineApplyIsOrderIndependent(t *testing.T) {
	base := threeRowTable()
	engine := NewFilterEngine()

	dayThenAge := engine.Apply(engine.Apply(base, entity.FilterSelection{DayOfWeek: "Monday"}), entity.FilterSelection{AgeGroup: "60+"})
	ageThenDay := engine.Apply(engine.Apply(base, entity.FilterSelection{AgeGroup: "60+"}), entity.FilterSelection{DayOfWeek: "Monday"})
	combined := engine.Apply(base, entity.FilterSelection{DayOfWeek: "Monday", AgeGroup: "60+"})

	assert.Equal(t, []string{"B"}, ids(combined))
	assert.Equal(t, combined.Rows(), dayThenAge.Rows())
	assert.Equal(t, combined.Rows(), ageThenDay.Rows())
}

func TestFilterEngineApplyLeavesBaseUntouched(t *testing.T) {
	base := threeRowTable()
	before := base.Rows()

	view := NewFilterEngine().Apply(base, entity.FilterSelection{DayOfWeek: "Tuesday"})

	assert.Equal(t, 1, view.Len())
	assert.Equal(t, before, base.Rows())
}

func TestFilterEngineOptions(t *testing.T) {
	rows := threeRowTable().Rows()
	rows[1].Neighbourhood = "BONFIM"
	base := entity.NewTable(rows)

	opts := NewFilterEngine().Options(base)

	assert.Equal(t, entity.WeekOrder, opts.Days)
	assert.Equal(t, []string{"BONFIM", "CENTRO"}, opts.Neighbourhoods)
	assert.Equal(t, []string{"0-19", "20-35", "36-60", "60+"}, opts.AgeGroups)
	assert.Equal(t, []string{"0", "1-2", "3-5", "6-10", "11-30", "30+"}, opts.GapGroups)
	assert.True(t, opts.FirstDay.Equal(monday))
	assert.True(t, opts.LastDay.Equal(tuesday))
	assert.Equal(t, time.Tuesday, opts.LastDay.Weekday())
}
