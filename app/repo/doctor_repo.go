package repo

import (
	"gorm.io/gorm"

	"clinic-api/app/models"
)

type DoctorRepository struct{ db *gorm.DB }

func NewDoctorRepository(db *gorm.DB) *DoctorRepository { return &DoctorRepository{db: db} }

func (r *DoctorRepository) Create(d *models.Doctor) error { return r.db.Create(d).Error }

func (r *DoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.Preload("User").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByIDWithAppointments also loads the doctor's appointment list.
func (r *DoctorRepository) FindByIDWithAppointments(id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.Preload("User").Preload("Appointments").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepository) FindByUserID(userID uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepository) List() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Preload("User").Find(&doctors).Error
	return doctors, err
}

func (r *DoctorRepository) Update(d *models.Doctor) error { return r.db.Save(d).Error }

func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
