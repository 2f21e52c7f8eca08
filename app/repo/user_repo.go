package repo

import (
	"errors"

	"gorm.io/gorm"

	"clinic-api/app/models"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}

func (r *UserRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(u *models.User) error { return r.db.Save(u).Error }

// DeleteCascade removes the user together with its dependent rows: profile
// rows and their appointments. The user's refresh tokens are revoked, not
// deleted; the token table is an append-only revocation log. All in one
// transaction.
func (r *UserRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.Where("user_id = ?", id).First(&doctor).Error; err == nil {
			if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&doctor).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var patient models.Patient
		if err := tx.Where("user_id = ?", id).First(&patient).Error; err == nil {
			if err := tx.Where("patient_id = ?", patient.ID).Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&patient).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Model(&models.RefreshToken{}).Where("user_id = ?", id).
			Update("revoked", true).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
