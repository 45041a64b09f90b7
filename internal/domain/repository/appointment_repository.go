package repository

import (
	"context"

	"github.com/go-gota/gota/dataframe"
)

// AppointmentRepository loads the raw appointment frame. Columns are renamed to
// the canonical names in entity.RequiredColumns and Age is typed as series.Int.
type AppointmentRepository interface {
	Load(ctx context.Context) (dataframe.DataFrame, error)
}
