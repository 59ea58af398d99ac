package models

import "time"

// Patient holds the structure for the patients collection in mongo. Admissions
// are embedded on the patient document, newest last.
type Patient struct {
	ID            int         `json:"id" bson:"id"`
	FullName      string      `json:"full_name" bson:"full_name"`
	Name          string      `json:"name" bson:"name"`
	MRN           string      `json:"mrn" bson:"mrn"`
	DateOfBirth   string      `json:"date_of_birth" bson:"date_of_birth"`
	Gender        string      `json:"gender" bson:"gender"`
	Department    string      `json:"department" bson:"department"`
	DoctorName    string      `json:"doctor_name,omitempty" bson:"doctor_name,omitempty"`
	AdmissionDate time.Time   `json:"admission_date" bson:"admission_date"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	Admissions    []Admission `json:"admissions,omitempty" bson:"admissions,omitempty"`
}

// Admission is one inpatient stay episode belonging to a patient.
// DischargeDate is nil while the stay is still active.
type Admission struct {
	ID              int              `json:"id" bson:"id"`
	Status          string           `json:"status" bson:"status"`
	AdmissionDate   time.Time        `json:"admission_date" bson:"admission_date"`
	DischargeDate   *time.Time       `json:"discharge_date,omitempty" bson:"discharge_date,omitempty"`
	VisitNumber     int              `json:"visit_number" bson:"visit_number"`
	Department      string           `json:"department" bson:"department"`
	Diagnosis       string           `json:"diagnosis" bson:"diagnosis"`
	SafetyType      string           `json:"safety_type,omitempty" bson:"safety_type,omitempty"`
	ShiftType       string           `json:"shift_type" bson:"shift_type"`
	IsWeekend       bool             `json:"is_weekend" bson:"is_weekend"`
	AdmittingDoctor *AdmittingDoctor `json:"admitting_doctor,omitempty" bson:"admitting_doctor,omitempty"`
}

// AdmittingDoctor is the doctor reference embedded on an admission
type AdmittingDoctor struct {
	ID          int    `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	MedicalCode string `json:"medical_code" bson:"medical_code"`
	Role        string `json:"role" bson:"role"`
	Department  string `json:"department" bson:"department"`
}

// Admission status values
const (
	AdmissionStatusActive     = "active"
	AdmissionStatusDischarged = "discharged"
)

// Safety classification values for an admission
const (
	SafetyTypeEmergency   = "emergency"
	SafetyTypeObservation = "observation"
	SafetyTypeShortStay   = "short-stay"
)
