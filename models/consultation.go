package models

import "time"

// Consultation holds the structure for the consultations collection in mongo.
// DoctorID is nil until a doctor has been assigned to the request.
type Consultation struct {
	ID                   int               `json:"id" bson:"id"`
	PatientID            int               `json:"patient_id" bson:"patient_id"`
	PatientName          string            `json:"patient_name" bson:"patient_name"`
	MRN                  string            `json:"mrn" bson:"mrn"`
	DoctorID             *int              `json:"doctor_id" bson:"doctor_id"`
	Doctor               *ConsultingDoctor `json:"doctor,omitempty" bson:"doctor,omitempty"`
	Specialty            string            `json:"consultation_specialty" bson:"consultation_specialty"`
	Urgency              string            `json:"urgency" bson:"urgency"`
	Status               string            `json:"status" bson:"status"`
	Age                  int               `json:"age" bson:"age"`
	Gender               string            `json:"gender" bson:"gender"`
	RequestingDepartment string            `json:"requesting_department" bson:"requesting_department"`
	PatientLocation      string            `json:"patient_location" bson:"patient_location"`
	ShiftType            string            `json:"shift_type" bson:"shift_type"`
	Reason               string            `json:"reason" bson:"reason"`
	CreatedAt            time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" bson:"updated_at"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CompletedBy          *int              `json:"completed_by,omitempty" bson:"completed_by,omitempty"`
	CompletionNote       string            `json:"completion_note,omitempty" bson:"completion_note,omitempty"`
}

// ConsultingDoctor is the doctor reference embedded on a consultation
type ConsultingDoctor struct {
	ID          int    `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	MedicalCode string `json:"medical_code,omitempty" bson:"medical_code,omitempty"`
	Role        string `json:"role,omitempty" bson:"role,omitempty"`
	Department  string `json:"department,omitempty" bson:"department,omitempty"`
}

// Consultation status values
const (
	ConsultationStatusActive     = "active"
	ConsultationStatusCompleted  = "completed"
	ConsultationStatusDischarged = "discharged"
)

// Urgency tiers, matched case-insensitively by the aggregators
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencyRoutine   = "routine"
)
