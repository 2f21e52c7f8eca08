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

type PatientService struct {
	patients *repo.PatientRepository
	users    *repo.UserRepository
}

func NewPatientService(patients *repo.PatientRepository, users *repo.UserRepository) *PatientService {
	return &PatientService{patients: patients, users: users}
}

func (s *PatientService) List(requestor *jwtutil.Claims) ([]models.Patient, error) {
	if !policy.CanAccess(requestor.Role, policy.ListPatients, false) {
		return nil, apperr.Forbidden()
	}
	return s.patients.List()
}

// Get allows admins and the owning user.
func (s *PatientService) Get(requestor *jwtutil.Claims, id uint) (*models.Patient, error) {
	p, err := s.patients.FindByIDWithAppointments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Patient not found")
		}
		return nil, err
	}
	if !policy.CanAccess(requestor.Role, policy.ReadPatient, requestor.UserID == p.UserID) {
		return nil, apperr.Forbidden()
	}
	return p, nil
}

func (s *PatientService) Create(requestor *jwtutil.Claims, userID uint, phone string) (*models.Patient, error) {
	if !policy.CanAccess(requestor.Role, policy.ManagePatient, false) {
		return nil, apperr.Forbidden()
	}
	if userID == 0 {
		return nil, apperr.Validationf("userId required")
	}

	u, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, err
	}
	if u.Role != models.RolePatient {
		return nil, apperr.Validationf("user does not have the PATIENT role")
	}
	if _, err := s.patients.FindByUserID(userID); err == nil {
		return nil, apperr.Conflictf("Patient already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &models.Patient{UserID: userID, Phone: phone}
	if err := s.patients.Create(p); err != nil {
		return nil, err
	}
	return s.patients.FindByID(p.ID)
}

func (s *PatientService) Update(requestor *jwtutil.Claims, id uint, phone string) (*models.Patient, error) {
	if !policy.CanAccess(requestor.Role, policy.ManagePatient, false) {
		return nil, apperr.Forbidden()
	}
	p, err := s.patients.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Patient not found")
		}
		return nil, err
	}
	p.Phone = phone
	if err := s.patients.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PatientService) Delete(requestor *jwtutil.Claims, id uint) error {
	if !policy.CanAccess(requestor.Role, policy.ManagePatient, false) {
		return apperr.Forbidden()
	}
	if _, err := s.patients.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Patient not found")
		}
		return err
	}
	return s.patients.Delete(id)
}
