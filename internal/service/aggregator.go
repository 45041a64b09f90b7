package service

import (
	"slices"
	"sort"
	"strconv"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
)

// Display labels for the binary dimensions, in category order.
var (
	genderLabels = []string{entity.GenderFemale.String(), entity.GenderMale.String()}
	smsLabels    = []string{"No SMS", "SMS Sent"}
	noShowLabels = []string{"Show-up", "No-show"}
)

// Condition names as shown on the chronic-condition chart.
const (
	ConditionHypertension = "Hypertension"
	ConditionDiabetes     = "Diabetes"
	ConditionAlcoholism   = "Alcoholism"
	ConditionHandicap     = "Handicap"
)

// Aggregator groups a view on a dimension and reduces the no-show measure.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

type accumulator struct {
	sum   float64
	count int
}

func (acc accumulator) result(kind entity.AggregationKind) float64 {
	switch kind {
	case entity.AggSum:
		return acc.sum
	case entity.AggCount:
		return float64(acc.count)
	default:
		if acc.count == 0 {
			return 0
		}
		return acc.sum / float64(acc.count)
	}
}

// GroupBy returns one point per category of dim in the dimension's order:
// week order or bucket order with zero-fill, ascending for month and year,
// first-encountered for neighbourhood.
func (g *Aggregator) GroupBy(view *entity.Table, dim entity.Dimension, kind entity.AggregationKind) (entity.Series, error) {
	if err := checkKind(kind); err != nil {
		return entity.Series{}, err
	}
	key, err := keyFunc(dim)
	if err != nil {
		return entity.Series{}, err
	}

	accs, encountered := accumulate(view, key)

	series := entity.Series{Name: string(kind), Dimension: dim}
	for _, label := range categories(dim, encountered) {
		var acc accumulator
		if p, ok := accs[label]; ok {
			acc = *p
		}
		series.Points = append(series.Points, entity.Point{Label: label, Value: acc.result(kind)})
	}
	return series, nil
}

// TopN groups like GroupBy, then keeps the n largest values. Ties keep the
// first-encountered order of the source rows.
func (g *Aggregator) TopN(view *entity.Table, dim entity.Dimension, kind entity.AggregationKind, n int) (entity.Series, error) {
	if err := checkKind(kind); err != nil {
		return entity.Series{}, err
	}
	key, err := keyFunc(dim)
	if err != nil {
		return entity.Series{}, err
	}

	accs, encountered := accumulate(view, key)
	series := entity.Series{Name: string(kind), Dimension: dim}
	for _, label := range encountered {
		series.Points = append(series.Points, entity.Point{Label: label, Value: accs[label].result(kind)})
	}

	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Value > series.Points[j].Value
	})
	if n >= 0 && len(series.Points) > n {
		series.Points = series.Points[:n]
	}
	return series, nil
}

// CrossTab groups on rowDim x colDim. Missing cells are 0, including mean cells
// with no observations.
func (g *Aggregator) CrossTab(view *entity.Table, rowDim, colDim entity.Dimension, kind entity.AggregationKind) (entity.Matrix, error) {
	if err := checkKind(kind); err != nil {
		return entity.Matrix{}, err
	}
	rowKey, err := keyFunc(rowDim)
	if err != nil {
		return entity.Matrix{}, err
	}
	colKey, err := keyFunc(colDim)
	if err != nil {
		return entity.Matrix{}, err
	}

	type cell struct{ row, col string }
	accs := make(map[cell]*accumulator)
	var rowsSeen, colsSeen []string
	seenRow := make(map[string]bool)
	seenCol := make(map[string]bool)

	view.Each(func(a entity.Appointment) {
		r, ok := rowKey(a)
		if !ok {
			return
		}
		c, ok := colKey(a)
		if !ok {
			return
		}
		if !seenRow[r] {
			seenRow[r] = true
			rowsSeen = append(rowsSeen, r)
		}
		if !seenCol[c] {
			seenCol[c] = true
			colsSeen = append(colsSeen, c)
		}
		acc, found := accs[cell{r, c}]
		if !found {
			acc = &accumulator{}
			accs[cell{r, c}] = acc
		}
		acc.sum += a.NoShowValue()
		acc.count++
	})

	m := entity.Matrix{
		RowDimension:    rowDim,
		ColumnDimension: colDim,
		Rows:            categories(rowDim, rowsSeen),
		Columns:         categories(colDim, colsSeen),
	}
	m.Values = make([][]float64, len(m.Rows))
	for i, r := range m.Rows {
		m.Values[i] = make([]float64, len(m.Columns))
		for j, c := range m.Columns {
			if acc, ok := accs[cell{r, c}]; ok {
				m.Values[i][j] = acc.result(kind)
			}
		}
	}
	return m, nil
}

// ConditionNoShows counts no-shows per chronic condition. Each condition is
// counted on its own, so a row with two conditions adds to both counts.
func (g *Aggregator) ConditionNoShows(view *entity.Table) entity.Series {
	var hypertension, diabetes, alcoholism, handicap float64
	view.Each(func(a entity.Appointment) {
		v := a.NoShowValue()
		if a.Hypertension {
			hypertension += v
		}
		if a.Diabetes {
			diabetes += v
		}
		if a.Alcoholism {
			alcoholism += v
		}
		if a.HasHandicap() {
			handicap += v
		}
	})

	return entity.Series{
		Name: string(entity.AggSum),
		Points: []entity.Point{
			{Label: ConditionHypertension, Value: hypertension},
			{Label: ConditionDiabetes, Value: diabetes},
			{Label: ConditionAlcoholism, Value: alcoholism},
			{Label: ConditionHandicap, Value: handicap},
		},
	}
}

// accumulate reduces view per category key, returning the categories in
// first-encountered order.
func accumulate(view *entity.Table, key func(entity.Appointment) (string, bool)) (map[string]*accumulator, []string) {
	accs := make(map[string]*accumulator)
	var order []string
	view.Each(func(a entity.Appointment) {
		k, ok := key(a)
		if !ok {
			return
		}
		acc, seen := accs[k]
		if !seen {
			acc = &accumulator{}
			accs[k] = acc
			order = append(order, k)
		}
		acc.sum += a.NoShowValue()
		acc.count++
	})
	return accs, order
}

func checkKind(kind entity.AggregationKind) error {
	switch kind {
	case entity.AggSum, entity.AggCount, entity.AggMean:
		return nil
	}
	return &entity.SchemaError{Field: "aggregation kind", Value: string(kind)}
}

// keyFunc returns the category extractor for dim. The boolean is false for rows
// that fall outside every category of dim.
func keyFunc(dim entity.Dimension) (func(entity.Appointment) (string, bool), error) {
	switch dim {
	case entity.DimDayOfWeek:
		return func(a entity.Appointment) (string, bool) { return a.DayOfWeek, a.DayOfWeek != "" }, nil
	case entity.DimMonth:
		return func(a entity.Appointment) (string, bool) { return strconv.Itoa(a.Month), true }, nil
	case entity.DimYear:
		return func(a entity.Appointment) (string, bool) { return strconv.Itoa(a.Year), true }, nil
	case entity.DimNeighbourhood:
		return func(a entity.Appointment) (string, bool) { return a.Neighbourhood, true }, nil
	case entity.DimAgeGroup:
		return func(a entity.Appointment) (string, bool) { return a.AgeGroup, a.AgeGroup != "" }, nil
	case entity.DimGapGroup:
		return func(a entity.Appointment) (string, bool) { return a.GapGroup, a.GapGroup != "" }, nil
	case entity.DimGender:
		return func(a entity.Appointment) (string, bool) { return a.Gender.String(), true }, nil
	case entity.DimSMSReceived:
		return func(a entity.Appointment) (string, bool) { return smsLabels[boolToInt(a.SMSReceived)], true }, nil
	case entity.DimNoShow:
		return func(a entity.Appointment) (string, bool) { return noShowLabels[boolToInt(a.NoShow)], true }, nil
	}
	return nil, &entity.SchemaError{Field: "dimension", Value: string(dim)}
}

// categories returns the ordered category labels of dim given the labels
// observed in the view.
func categories(dim entity.Dimension, observed []string) []string {
	switch dim {
	case entity.DimDayOfWeek:
		return slices.Clone(entity.WeekOrder)
	case entity.DimAgeGroup:
		return entity.AgeGroups.Labels()
	case entity.DimGapGroup:
		return entity.GapGroups.Labels()
	case entity.DimGender:
		return slices.Clone(genderLabels)
	case entity.DimSMSReceived:
		return slices.Clone(smsLabels)
	case entity.DimNoShow:
		return slices.Clone(noShowLabels)
	case entity.DimMonth, entity.DimYear:
		sorted := slices.Clone(observed)
		sort.Slice(sorted, func(i, j int) bool {
			a, _ := strconv.Atoi(sorted[i])
			b, _ := strconv.Atoi(sorted[j])
			return a < b
		})
		return sorted
	default:
		return observed
	}
}
