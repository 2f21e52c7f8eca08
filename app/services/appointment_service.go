package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"clinic-api/app/apperr"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
	"clinic-api/app/policy"
	"clinic-api/app/repo"
)

type AppointmentService struct {
	appointments *repo.AppointmentRepository
	doctors      *repo.DoctorRepository
	patients     *repo.PatientRepository
}

func NewAppointmentService(appointments *repo.AppointmentRepository, doctors *repo.DoctorRepository, patients *repo.PatientRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, doctors: doctors, patients: patients}
}

// ownDoctor resolves the requestor's doctor row from identity. A DOCTOR-role
// user without one is a configuration error (400), not an authorization
// failure.
func (s *AppointmentService) ownDoctor(requestor *jwtutil.Claims) (*models.Doctor, error) {
	d, err := s.doctors.FindByUserID(requestor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("Doctor profile not found")
		}
		return nil, err
	}
	return d, nil
}

func (s *AppointmentService) ownPatient(requestor *jwtutil.Claims) (*models.Patient, error) {
	p, err := s.patients.FindByUserID(requestor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("No patient profile found for this user")
		}
		return nil, err
	}
	return p, nil
}

// Create books an appointment in PENDING state. A PATIENT books for their own
// patient row — any patientId in the request is ignored, never trusted. An
// ADMIN must name the patient explicitly.
func (s *AppointmentService) Create(requestor *jwtutil.Claims, doctorID, patientID uint, date time.Time) (*models.Appointment, error) {
	if !policy.CanAccess(requestor.Role, policy.CreateAppointment, false) {
		return nil, apperr.Forbidden()
	}
	if doctorID == 0 || date.IsZero() {
		return nil, apperr.Validationf("doctorId and date are required")
	}

	if _, err := s.doctors.FindByID(doctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Doctor not found")
		}
		return nil, err
	}

	switch requestor.Role {
	case models.RolePatient:
		p, err := s.ownPatient(requestor)
		if err != nil {
			return nil, err
		}
		patientID = p.ID
	case models.RoleAdmin:
		if patientID == 0 {
			return nil, apperr.Validationf("patientId required for admin creation")
		}
		if _, err := s.patients.FindByID(patientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFoundf("Patient not found")
			}
			return nil, err
		}
	}

	a := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Status:    models.StatusPending,
	}
	if err := s.appointments.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns the appointments the requestor may see: all for admins, the
// assigned ones for doctors, the owned ones for patients.
func (s *AppointmentService) List(requestor *jwtutil.Claims) ([]models.Appointment, error) {
	if !policy.CanAccess(requestor.Role, policy.ListAppointments, true) {
		return nil, apperr.Forbidden()
	}
	switch requestor.Role {
	case models.RoleAdmin:
		return s.appointments.ListAll()
	case models.RoleDoctor:
		d, err := s.ownDoctor(requestor)
		if err != nil {
			return nil, err
		}
		return s.appointments.ListByDoctor(d.ID)
	case models.RolePatient:
		p, err := s.ownPatient(requestor)
		if err != nil {
			return nil, err
		}
		return s.appointments.ListByPatient(p.ID)
	}
	return nil, apperr.Forbidden()
}

func (s *AppointmentService) Get(requestor *jwtutil.Claims, id uint) (*models.Appointment, error) {
	a, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Appointment not found")
		}
		return nil, err
	}
	owns, err := s.owns(requestor, a, policy.ReadAppointment)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(requestor.Role, policy.ReadAppointment, owns) {
		return nil, apperr.Forbidden()
	}
	return a, nil
}

// UpdateStatus transitions the appointment. The target status is validated
// against the enumerated set before any store access; only the assigned
// doctor or an admin may transition.
func (s *AppointmentService) UpdateStatus(requestor *jwtutil.Claims, id uint, status string) (*models.Appointment, error) {
	target := models.AppointmentStatus(status)
	if !target.Valid() {
		return nil, apperr.Validationf("Invalid status")
	}

	a, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Appointment not found")
		}
		return nil, err
	}

	owns, err := s.owns(requestor, a, policy.UpdateAppointmentStatus)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(requestor.Role, policy.UpdateAppointmentStatus, owns) {
		return nil, apperr.Forbidden()
	}

	if err := s.appointments.UpdateStatus(id, target); err != nil {
		return nil, err
	}
	return s.appointments.FindByID(id)
}

// Cancel deletes the appointment: cancellation-by-removal for the owning
// patient, or an admin delete.
func (s *AppointmentService) Cancel(requestor *jwtutil.Claims, id uint) error {
	a, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Appointment not found")
		}
		return err
	}
	owns, err := s.owns(requestor, a, policy.CancelAppointment)
	if err != nil {
		return err
	}
	if !policy.CanAccess(requestor.Role, policy.CancelAppointment, owns) {
		return apperr.Forbidden()
	}
	return s.appointments.Delete(id)
}

// owns resolves whether the requestor's own profile row matches the
// appointment, for roles whose access is ownership-scoped. Profile lookups
// happen only when the policy could grant AllowOwn, so a patient asking to
// approve never trips the missing-doctor-profile configuration error.
func (s *AppointmentService) owns(requestor *jwtutil.Claims, a *models.Appointment, action policy.Action) (bool, error) {
	if policy.Decide(requestor.Role, action) != policy.AllowOwn {
		return false, nil
	}
	switch requestor.Role {
	case models.RoleDoctor:
		d, err := s.ownDoctor(requestor)
		if err != nil {
			return false, err
		}
		return d.ID == a.DoctorID, nil
	case models.RolePatient:
		p, err := s.ownPatient(requestor)
		if err != nil {
			return false, err
		}
		return p.ID == a.PatientID, nil
	}
	return false, nil
}
