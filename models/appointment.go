package models

import "time"

// Appointment holds the structure for the appointments collection in mongo
type Appointment struct {
	ID              int       `json:"id" bson:"id"`
	PatientName     string    `json:"patientName" bson:"patientName"`
	MedicalNumber   string    `json:"medicalNumber" bson:"medicalNumber"`
	Specialty       string    `json:"specialty" bson:"specialty"`
	AppointmentType string    `json:"appointmentType" bson:"appointmentType"`
	Status          string    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
