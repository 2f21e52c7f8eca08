package initialize

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-api/app/models"
)

// EnsureAdmin creates the bootstrap admin account on first boot.
func (a *App) EnsureAdmin(email, password string) error {
	var count int64
	if err := a.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Log.Info().Str("email", email).Msg("seeding admin user")
	return a.DB.Create(&models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Name:         "Admin User",
	}).Error
}

// SeedDemo inserts a doctor, a patient and one pending appointment for local
// development. Idempotent: skipped once the doctor account exists.
func (a *App) SeedDemo() error {
	const (
		doctorEmail  = "doc@clinic.test"
		patientEmail = "pat@clinic.test"
	)

	var existing models.User
	err := a.DB.Where("email = ?", doctorEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return a.DB.Transaction(func(tx *gorm.DB) error {
		docHash, err := bcrypt.GenerateFromPassword([]byte("doctor123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		patHash, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		docUser := models.User{Email: doctorEmail, PasswordHash: string(docHash), Role: models.RoleDoctor, Name: "Dr. Who"}
		if err := tx.Create(&docUser).Error; err != nil {
			return err
		}
		patUser := models.User{Email: patientEmail, PasswordHash: string(patHash), Role: models.RolePatient, Name: "Patient Zero"}
		if err := tx.Create(&patUser).Error; err != nil {
			return err
		}

		doctor := models.Doctor{UserID: docUser.ID, Specialty: "General"}
		if err := tx.Create(&doctor).Error; err != nil {
			return err
		}
		patient := models.Patient{UserID: patUser.ID, Phone: "555-0110"}
		if err := tx.Create(&patient).Error; err != nil {
			return err
		}

		return tx.Create(&models.Appointment{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      time.Now().Add(24 * time.Hour),
			Status:    models.StatusPending,
		}).Error
	})
}
