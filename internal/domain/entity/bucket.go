package entity

import "time"

// WeekOrder is the display order of day-of-week categories. It starts on Saturday.
var WeekOrder = []string{
	time.Saturday.String(),
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
}

// Bucket is a (Lower, Upper] interval with a label. When Closed is set the
// lower bound is included as well.
type Bucket struct {
	Lower  int
	Upper  int
	Label  string
	Closed bool
}

func (b Bucket) Contains(v int) bool {
	if b.Closed && v == b.Lower {
		return true
	}
	return v > b.Lower && v <= b.Upper
}

// Buckets is an ordered boundary table.
type Buckets []Bucket

// Assign returns the label of the first bucket containing v, or "" when none does.
func (bs Buckets) Assign(v int) string {
	for _, b := range bs {
		if b.Contains(v) {
			return b.Label
		}
	}
	return ""
}

func (bs Buckets) Labels() []string {
	labels := make([]string, len(bs))
	for i, b := range bs {
		labels[i] = b.Label
	}
	return labels
}

func (bs Buckets) Has(label string) bool {
	for _, b := range bs {
		if b.Label == label {
			return true
		}
	}
	return false
}

var AgeGroups = Buckets{
	{Lower: 0, Upper: 19, Label: "0-19", Closed: true},
	{Lower: 19, Upper: 35, Label: "20-35"},
	{Lower: 35, Upper: 60, Label: "36-60"},
	{Lower: 60, Upper: 100, Label: "60+"},
}

var GapGroups = Buckets{
	{Lower: -1, Upper: 0, Label: "0"},
	{Lower: 0, Upper: 2, Label: "1-2"},
	{Lower: 2, Upper: 5, Label: "3-5"},
	{Lower: 5, Upper: 10, Label: "6-10"},
	{Lower: 10, Upper: 30, Label: "11-30"},
	{Lower: 30, Upper: 100, Label: "30+"},
}

// Age range kept by the cleaner, both ends inclusive.
const (
	MinAge = 0
	MaxAge = 100
)
