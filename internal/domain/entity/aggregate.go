package entity

// Dimension names a categorical column a view can be grouped on.
type Dimension string

const (
	DimDayOfWeek     Dimension = "dayOfWeek"
	DimMonth         Dimension = "month"
	DimYear          Dimension = "year"
	DimNeighbourhood Dimension = "neighbourhood"
	DimAgeGroup      Dimension = "ageGroup"
	DimGapGroup      Dimension = "gapGroup"
	DimGender        Dimension = "gender"
	DimSMSReceived   Dimension = "smsReceived"
	DimNoShow        Dimension = "noShow"
)

// AggregationKind selects how the no-show measure is reduced per group.
type AggregationKind string

const (
	AggSum   AggregationKind = "sum"
	AggCount AggregationKind = "count"
	AggMean  AggregationKind = "mean"
)

type Point struct {
	Label string
	Value float64
}

// Series is an ordered mapping from category label to aggregate value.
type Series struct {
	Name      string
	Dimension Dimension
	Points    []Point
}

func (s Series) Labels() []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Label
	}
	return labels
}

func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Value looks up the value for label.
func (s Series) Value(label string) (float64, bool) {
	for _, p := range s.Points {
		if p.Label == label {
			return p.Value, true
		}
	}
	return 0, false
}

// Matrix is a two-dimensional grouping: one row per category of RowDimension,
// one column per category of ColumnDimension.
type Matrix struct {
	RowDimension    Dimension
	ColumnDimension Dimension
	Rows            []string
	Columns         []string
	Values          [][]float64
}

// Cell returns the value at (row, column) by label.
func (m Matrix) Cell(row, column string) (float64, bool) {
	for i, r := range m.Rows {
		if r != row {
			continue
		}
		for j, c := range m.Columns {
			if c == column {
				return m.Values[i][j], true
			}
		}
	}
	return 0, false
}
