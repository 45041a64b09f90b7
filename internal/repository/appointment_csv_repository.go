package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
	domainRepo "github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/repository"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"
)

// columnAliases maps normalized header names to canonical columns.
// Normalization lowercases and drops everything but letters and digits.
var columnAliases = map[string]string{
	"patientid":       entity.ColPatientID,
	"appointmentid":   entity.ColAppointmentID,
	"gender":          entity.ColGender,
	"sex":             entity.ColGender,
	"scheduledday":    entity.ColScheduledDay,
	"scheduleddate":   entity.ColScheduledDay,
	"appointmentday":  entity.ColAppointmentDay,
	"appointmentdate": entity.ColAppointmentDay,
	"age":             entity.ColAge,
	"neighbourhood":   entity.ColNeighbourhood,
	"neighborhood":    entity.ColNeighbourhood,
	"hipertension":    entity.ColHypertension,
	"hypertension":    entity.ColHypertension,
	"diabetes":        entity.ColDiabetes,
	"alcoholism":      entity.ColAlcoholism,
	"handcap":         entity.ColHandicap,
	"handicap":        entity.ColHandicap,
	"smsreceived":     entity.ColSMSReceived,
	"noshow":          entity.ColNoShow,
}

type appointmentCSVRepository struct {
	path string
	log  *logrus.Logger
}

func NewAppointmentCSVRepository(path string, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &appointmentCSVRepository{
		path: path,
		log:  log,
	}
}

func (r *appointmentCSVRepository) Load(ctx context.Context) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return dataframe.DataFrame{}, &entity.LoadError{Source: r.path, Reason: "cannot open dataset", Err: err}
	}
	defer f.Close()

	df, err := ReadAppointmentsCSV(f)
	if err != nil {
		var le *entity.LoadError
		if errors.As(err, &le) {
			le.Source = r.path
		}
		return dataframe.DataFrame{}, err
	}

	r.log.Infof("Loaded %d appointments from %s", df.Nrow(), r.path)
	return df, nil
}

// ReadAppointmentsCSV parses an appointment CSV into a frame with canonical
// column names. Every column is kept as text except Age.
func ReadAppointmentsCSV(src io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(src,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, &entity.LoadError{Source: "csv", Reason: "unreadable dataset", Err: df.Err}
	}

	df, err := canonicalizeColumns(df)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	ages, err := parseAges(df.Col(entity.ColAge).Records())
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	df = df.Mutate(series.New(ages, series.Int, entity.ColAge))
	if df.Err != nil {
		return dataframe.DataFrame{}, &entity.LoadError{Source: "csv", Reason: "cannot type age column", Err: df.Err}
	}

	return df.Select(entity.RequiredColumns), nil
}

func canonicalizeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	seen := make(map[string]string)
	for _, name := range df.Names() {
		canonical, ok := columnAliases[normalizeHeader(name)]
		if !ok {
			continue
		}
		if prev, dup := seen[canonical]; dup {
			return df, &entity.LoadError{
				Source: "csv",
				Reason: fmt.Sprintf("columns %q and %q both map to %s", prev, name, canonical),
			}
		}
		seen[canonical] = name
		if name != canonical {
			df = df.Rename(canonical, name)
		}
	}

	var missing []string
	for _, col := range entity.RequiredColumns {
		if _, ok := seen[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return df, &entity.LoadError{
			Source: "csv",
			Reason: "missing required columns: " + strings.Join(missing, ", "),
		}
	}
	return df, nil
}

func parseAges(records []string) ([]int, error) {
	ages := make([]int, len(records))
	for i, rec := range records {
		age, err := strconv.Atoi(strings.TrimSpace(rec))
		if err != nil {
			return nil, &entity.LoadError{
				Source: "csv",
				Reason: fmt.Sprintf("row %d: age %q is not an integer", i+1, rec),
				Err:    err,
			}
		}
		ages[i] = age
	}
	return ages, nil
}

func normalizeHeader(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
