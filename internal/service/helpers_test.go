package service

import (
	"io"
	"testing"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// rawRow is one source row keyed by column, with defaults for anything omitted.
type rawRow map[string]string

func rawFrame(t *testing.T, rows ...rawRow) dataframe.DataFrame {
	t.Helper()
	defaults := rawRow{
		entity.ColPatientID:      "1",
		entity.ColAppointmentID:  "100",
		entity.ColGender:         "F",
		entity.ColScheduledDay:   "2016-04-25T08:00:00Z",
		entity.ColAppointmentDay: "2016-04-29T00:00:00Z",
		entity.ColAge:            "30",
		entity.ColNeighbourhood:  "CENTRO",
		entity.ColHypertension:   "0",
		entity.ColDiabetes:       "0",
		entity.ColAlcoholism:     "0",
		entity.ColHandicap:       "0",
		entity.ColSMSReceived:    "0",
		entity.ColNoShow:         "No",
	}

	records := [][]string{entity.RequiredColumns}
	for _, r := range rows {
		record := make([]string, len(entity.RequiredColumns))
		for i, col := range entity.RequiredColumns {
			if v, ok := r[col]; ok {
				record[i] = v
			} else {
				record[i] = defaults[col]
			}
		}
		records = append(records, record)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	require.NoError(t, df.Err)
	return df
}

// Monday 2016-05-02 and Tuesday 2016-05-03 are used throughout.
var (
	monday  = time.Date(2016, time.May, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2016, time.May, 3, 0, 0, 0, 0, time.UTC)
)

// appointment builds a fully derived row the same way the feature deriver does.
func appointment(id string, day time.Time, age, gap int, noShow bool) entity.Appointment {
	a := entity.Appointment{
		PatientID:      "p" + id,
		AppointmentID:  id,
		Gender:         entity.GenderFemale,
		ScheduledDay:   day.AddDate(0, 0, -gap),
		AppointmentDay: day,
		Age:            age,
		Neighbourhood:  "CENTRO",
		NoShow:         noShow,
	}
	deriveFeatures(&a)
	return a
}

// threeRowTable holds three rows:
// A (Monday, 25, no-show, gap 2), B (Monday, 70, show, gap 10), C (Tuesday, 25, no-show, gap 40).
func threeRowTable() *entity.Table {
	return entity.NewTable([]entity.Appointment{
		appointment("A", monday, 25, 2, true),
		appointment("B", monday, 70, 10, false),
		appointment("C", tuesday, 25, 40, true),
	})
}
