package entity

// Canonical column names of the raw appointment frame produced by the loader.
const (
	ColPatientID      = "PatientId"
	ColAppointmentID  = "AppointmentID"
	ColGender         = "Gender"
	ColScheduledDay   = "ScheduledDay"
	ColAppointmentDay = "AppointmentDay"
	ColAge            = "Age"
	ColNeighbourhood  = "Neighbourhood"
	ColHypertension   = "Hipertension"
	ColDiabetes       = "Diabetes"
	ColAlcoholism     = "Alcoholism"
	ColHandicap       = "Handcap"
	ColSMSReceived    = "SMS_received"
	ColNoShow         = "No-show"
)

// RequiredColumns is the fixed input schema, in source order.
var RequiredColumns = []string{
	ColPatientID,
	ColAppointmentID,
	ColGender,
	ColScheduledDay,
	ColAppointmentDay,
	ColAge,
	ColNeighbourhood,
	ColHypertension,
	ColDiabetes,
	ColAlcoholism,
	ColHandicap,
	ColSMSReceived,
	ColNoShow,
}
