package services

import (
	"errors"

	"gorm.io/gorm"

	"clinic-api/app/apperr"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
	"clinic-api/app/policy"
	"clinic-api/app/repo"
)

type DoctorService struct {
	doctors *repo.DoctorRepository
	users   *repo.UserRepository
}

func NewDoctorService(doctors *repo.DoctorRepository, users *repo.UserRepository) *DoctorService {
	return &DoctorService{doctors: doctors, users: users}
}

func (s *DoctorService) List(requestor *jwtutil.Claims) ([]models.Doctor, error) {
	if !policy.CanAccess(requestor.Role, policy.ListDoctors, false) {
		return nil, apperr.Forbidden()
	}
	return s.doctors.List()
}

func (s *DoctorService) Get(requestor *jwtutil.Claims, id uint) (*models.Doctor, error) {
	if !policy.CanAccess(requestor.Role, policy.ReadDoctor, false) {
		return nil, apperr.Forbidden()
	}
	d, err := s.doctors.FindByIDWithAppointments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Doctor not found")
		}
		return nil, err
	}
	return d, nil
}

// Create links a doctor row to an existing DOCTOR-role user. The role check
// is the service-layer invariant the schema does not enforce.
func (s *DoctorService) Create(requestor *jwtutil.Claims, userID uint, specialty string) (*models.Doctor, error) {
	if !policy.CanAccess(requestor.Role, policy.ManageDoctor, false) {
		return nil, apperr.Forbidden()
	}
	if userID == 0 || specialty == "" {
		return nil, apperr.Validationf("userId and specialty required")
	}

	u, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, err
	}
	if u.Role != models.RoleDoctor {
		return nil, apperr.Validationf("user does not have the DOCTOR role")
	}
	if _, err := s.doctors.FindByUserID(userID); err == nil {
		return nil, apperr.Conflictf("Doctor already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &models.Doctor{UserID: userID, Specialty: specialty}
	if err := s.doctors.Create(d); err != nil {
		return nil, err
	}
	return s.doctors.FindByID(d.ID)
}

func (s *DoctorService) Update(requestor *jwtutil.Claims, id uint, specialty string) (*models.Doctor, error) {
	if !policy.CanAccess(requestor.Role, policy.ManageDoctor, false) {
		return nil, apperr.Forbidden()
	}
	if specialty == "" {
		return nil, apperr.Validationf("specialty required")
	}
	d, err := s.doctors.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Doctor not found")
		}
		return nil, err
	}
	d.Specialty = specialty
	if err := s.doctors.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Delete(requestor *jwtutil.Claims, id uint) error {
	if !policy.CanAccess(requestor.Role, policy.ManageDoctor, false) {
		return apperr.Forbidden()
	}
	if _, err := s.doctors.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Doctor not found")
		}
		return err
	}
	return s.doctors.Delete(id)
}
