package models

import "time"

type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "PENDING"
	StatusApproved AppointmentStatus = "APPROVED"
	StatusCanceled AppointmentStatus = "CANCELED"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCanceled:
		return true
	}
	return false
}

type Appointment struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	DoctorID  uint              `gorm:"index;not null" json:"doctorId"`
	PatientID uint              `gorm:"index;not null" json:"patientId"`
	Date      time.Time         `gorm:"not null" json:"date"`
	Status    AppointmentStatus `gorm:"size:16;not null;default:PENDING" json:"status"`
	Doctor    *Doctor           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient   *Patient          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
