package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/go-gota/gota/dataframe"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

const day = 24 * time.Hour

// FeatureDeriver turns the cleaned raw frame into the typed base table,
// computing every derived field exactly once.
type FeatureDeriver struct{}

func NewFeatureDeriver() *FeatureDeriver {
	return &FeatureDeriver{}
}

func (d *FeatureDeriver) Derive(df dataframe.DataFrame) (*entity.Table, error) {
	for _, col := range entity.RequiredColumns {
		if s := df.Col(col); s.Err != nil {
			return nil, &entity.SchemaError{Field: "column", Value: col}
		}
	}

	ages, err := df.Col(entity.ColAge).Int()
	if err != nil {
		return nil, fmt.Errorf("read age column: %w", err)
	}

	var (
		patientIDs     = df.Col(entity.ColPatientID).Records()
		appointmentIDs = df.Col(entity.ColAppointmentID).Records()
		genders        = df.Col(entity.ColGender).Records()
		scheduled      = df.Col(entity.ColScheduledDay).Records()
		appointment    = df.Col(entity.ColAppointmentDay).Records()
		neighbourhoods = df.Col(entity.ColNeighbourhood).Records()
		hypertension   = df.Col(entity.ColHypertension).Records()
		diabetes       = df.Col(entity.ColDiabetes).Records()
		alcoholism     = df.Col(entity.ColAlcoholism).Records()
		handicap       = df.Col(entity.ColHandicap).Records()
		sms            = df.Col(entity.ColSMSReceived).Records()
		noShow         = df.Col(entity.ColNoShow).Records()
	)

	rows := make([]entity.Appointment, df.Nrow())
	for i := range rows {
		row := i + 1
		a := &rows[i]
		a.PatientID = patientIDs[i]
		a.AppointmentID = appointmentIDs[i]
		a.Age = ages[i]
		a.Neighbourhood = neighbourhoods[i]

		if a.Gender, err = parseGender(row, genders[i]); err != nil {
			return nil, err
		}
		if a.ScheduledDay, err = parseTimestamp(row, entity.ColScheduledDay, scheduled[i]); err != nil {
			return nil, err
		}
		if a.AppointmentDay, err = parseTimestamp(row, entity.ColAppointmentDay, appointment[i]); err != nil {
			return nil, err
		}
		if a.Hypertension, err = parseFlag(row, entity.ColHypertension, hypertension[i]); err != nil {
			return nil, err
		}
		if a.Diabetes, err = parseFlag(row, entity.ColDiabetes, diabetes[i]); err != nil {
			return nil, err
		}
		if a.Alcoholism, err = parseFlag(row, entity.ColAlcoholism, alcoholism[i]); err != nil {
			return nil, err
		}
		if a.Handicap, err = parseOrdinal(row, entity.ColHandicap, handicap[i]); err != nil {
			return nil, err
		}
		if a.SMSReceived, err = parseFlag(row, entity.ColSMSReceived, sms[i]); err != nil {
			return nil, err
		}
		if a.NoShow, err = parseNoShow(row, noShow[i]); err != nil {
			return nil, err
		}

		deriveFeatures(a)
	}

	return entity.NewTable(rows), nil
}

func deriveFeatures(a *entity.Appointment) {
	a.GapDays = GapDays(a.ScheduledDay, a.AppointmentDay)
	a.DayOfWeek = a.AppointmentDay.Weekday().String()
	a.Month = int(a.AppointmentDay.Month())
	a.Year = a.AppointmentDay.Year()
	a.AgeGroup = entity.AgeGroups.Assign(a.Age)
	a.GapGroup = entity.GapGroups.Assign(a.GapDays)
	a.ConditionCount = boolToInt(a.Hypertension) + boolToInt(a.Diabetes) +
		boolToInt(a.Alcoholism) + boolToInt(a.HasHandicap())
}

// GapDays is the whole-day difference appointment - scheduled, rounded toward
// negative infinity. An appointment booked earlier on the same day gives -1.
func GapDays(scheduled, appointment time.Time) int {
	d := appointment.Sub(scheduled)
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

func parseTimestamp(row int, column, value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &entity.ParseError{Row: row, Column: column, Value: value, Err: lastErr}
}

func parseGender(row int, value string) (entity.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "f", "female":
		return entity.GenderFemale, nil
	case "m", "male":
		return entity.GenderMale, nil
	}
	return 0, &entity.DomainError{Row: row, Column: entity.ColGender, Value: value}
}

func parseNoShow(row int, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "no", "0", "false":
		return false, nil
	case "yes", "1", "true":
		return true, nil
	}
	return false, &entity.DomainError{Row: row, Column: entity.ColNoShow, Value: value}
}

func parseFlag(row int, column, value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, &entity.DomainError{Row: row, Column: column, Value: value}
}

func parseOrdinal(row int, column, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, &entity.DomainError{Row: row, Column: column, Value: value}
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
