package entity

import "time"

// Gender is label-encoded in the order of its source labels: Female=0, Male=1.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "Female"
	case GenderMale:
		return "Male"
	default:
		return "Unknown"
	}
}

// Appointment is one row of the base table: the source fields plus the features
// derived from them once at load time.
type Appointment struct {
	PatientID      string
	AppointmentID  string
	Gender         Gender
	ScheduledDay   time.Time
	AppointmentDay time.Time
	Age            int
	Neighbourhood  string
	Hypertension   bool
	Diabetes       bool
	Alcoholism     bool
	// Handicap keeps the ordinal value from the source; presence is Handicap > 0.
	Handicap    int
	SMSReceived bool
	NoShow      bool

	GapDays        int
	DayOfWeek      string
	Month          int
	Year           int
	AgeGroup       string
	GapGroup       string
	ConditionCount int
}

// NoShowValue returns the encoded outcome label (0 attended, 1 no-show).
func (a Appointment) NoShowValue() float64 {
	if a.NoShow {
		return 1
	}
	return 0
}

func (a Appointment) HasHandicap() bool {
	return a.Handicap > 0
}
