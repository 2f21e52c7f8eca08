package repo

import (
	"gorm.io/gorm"

	"clinic-api/app/models"
)

type AppointmentRepository struct{ db *gorm.DB }

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) withRelations() *gorm.DB {
	return r.db.Preload("Doctor.User").Preload("Patient.User")
}

func (r *AppointmentRepository) Create(a *models.Appointment) error {
	if err := r.db.Create(a).Error; err != nil {
		return err
	}
	// reload with relations so the response carries doctor/patient details
	return r.withRelations().First(a, a.ID).Error
}

func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.withRelations().First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) ListAll() ([]models.Appointment, error) {
	var list []models.Appointment
	err := r.withRelations().Order("date DESC").Find(&list).Error
	return list, err
}

func (r *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var list []models.Appointment
	err := r.withRelations().Where("doctor_id = ?", doctorID).Order("date DESC").Find(&list).Error
	return list, err
}

func (r *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var list []models.Appointment
	err := r.withRelations().Where("patient_id = ?", patientID).Order("date DESC").Find(&list).Error
	return list, err
}

func (r *AppointmentRepository) UpdateStatus(id uint, status models.AppointmentStatus) error {
	return r.db.Model(&models.Appointment{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *AppointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
