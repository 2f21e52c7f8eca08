package repo

import (
	"gorm.io/gorm"

	"clinic-api/app/models"
)

type PatientRepository struct{ db *gorm.DB }

func NewPatientRepository(db *gorm.DB) *PatientRepository { return &PatientRepository{db: db} }

func (r *PatientRepository) Create(p *models.Patient) error { return r.db.Create(p).Error }

func (r *PatientRepository) FindByID(id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) FindByIDWithAppointments(id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.Preload("User").Preload("Appointments").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) FindByUserID(userID uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) List() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Preload("User").Find(&patients).Error
	return patients, err
}

func (r *PatientRepository) Update(p *models.Patient) error { return r.db.Save(p).Error }

func (r *PatientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Patient{}, id).Error
}
