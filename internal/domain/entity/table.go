package entity

import (
	"fmt"
	"hash/fnv"
	"slices"
	"sort"
	"time"
)

// Table is an immutable set of appointments. The base table and every filtered
// view derived from it share this type; none of its methods modify it, so a
// Table is safe for concurrent readers.
type Table struct {
	rows []Appointment
}

// NewTable copies rows into a new table.
func NewTable(rows []Appointment) *Table {
	return &Table{rows: slices.Clone(rows)}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Table) Row(i int) Appointment {
	return t.rows[i]
}

// Each calls fn for every row in order.
func (t *Table) Each(fn func(Appointment)) {
	if t == nil {
		return
	}
	for _, r := range t.rows {
		fn(r)
	}
}

// Rows returns a copy of the rows.
func (t *Table) Rows() []Appointment {
	if t == nil {
		return nil
	}
	return slices.Clone(t.rows)
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Appointment) bool) *Table {
	out := &Table{}
	t.Each(func(a Appointment) {
		if keep(a) {
			out.rows = append(out.rows, a)
		}
	})
	return out
}

// AppointmentRange returns the earliest and latest appointment day.
func (t *Table) AppointmentRange() (first, last time.Time) {
	t.Each(func(a Appointment) {
		if first.IsZero() || a.AppointmentDay.Before(first) {
			first = a.AppointmentDay
		}
		if last.IsZero() || a.AppointmentDay.After(last) {
			last = a.AppointmentDay
		}
	})
	return first, last
}

// Neighbourhoods returns the distinct neighbourhood names sorted alphabetically.
func (t *Table) Neighbourhoods() []string {
	seen := make(map[string]struct{})
	var names []string
	t.Each(func(a Appointment) {
		if _, ok := seen[a.Neighbourhood]; ok {
			return
		}
		seen[a.Neighbourhood] = struct{}{}
		names = append(names, a.Neighbourhood)
	})
	sort.Strings(names)
	return names
}

// Fingerprint identifies the table content well enough to key caches on it.
func (t *Table) Fingerprint() string {
	h := fnv.New64a()
	t.Each(func(a Appointment) {
		fmt.Fprintf(h, "%s|%s|%d|%t;", a.AppointmentID, a.AppointmentDay.Format(time.RFC3339), a.Age, a.NoShow)
	})
	return fmt.Sprintf("%d-%x", t.Len(), h.Sum64())
}
