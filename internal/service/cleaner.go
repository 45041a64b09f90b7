package service

import (
	"fmt"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Cleaner drops rows whose age is outside [entity.MinAge, entity.MaxAge].
// Rows are removed, never clamped.
type Cleaner struct{}

func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the surviving rows and how many were dropped.
func (c *Cleaner) Clean(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
	cleaned := df.
		Filter(dataframe.F{Colname: entity.ColAge, Comparator: series.GreaterEq, Comparando: entity.MinAge}).
		Filter(dataframe.F{Colname: entity.ColAge, Comparator: series.LessEq, Comparando: entity.MaxAge})
	if cleaned.Err != nil {
		return dataframe.DataFrame{}, 0, fmt.Errorf("filter age range: %w", cleaned.Err)
	}

	return cleaned, df.Nrow() - cleaned.Nrow(), nil
}
