package dto

import "time"

type CreateDoctorRequest struct {
	UserID    uint   `json:"userId"`
	Specialty string `json:"specialty"`
}

type UpdateDoctorRequest struct {
	Specialty string `json:"specialty"`
}

type CreatePatientRequest struct {
	UserID uint   `json:"userId"`
	Phone  string `json:"phone"`
}

type UpdatePatientRequest struct {
	Phone string `json:"phone"`
}

type CreateAppointmentRequest struct {
	DoctorID uint `json:"doctorId"`
	// PatientID is honored for ADMIN requests only; for PATIENT requests the
	// patient row is resolved from the authenticated identity.
	PatientID uint      `json:"patientId"`
	Date      time.Time `json:"date"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}
