package services_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinic-api/app/apperr"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
	"clinic-api/app/repo"
	"clinic-api/app/services"
)

type env struct {
	db           *gorm.DB
	signer       *jwtutil.Signer
	users        *repo.UserRepository
	doctors      *repo.DoctorRepository
	patients     *repo.PatientRepository
	appointments *repo.AppointmentRepository
	tokens       *repo.RefreshTokenRepository

	auth        *services.AuthService
	user        *services.UserService
	doctor      *services.DoctorService
	patient     *services.PatientService
	appointment *services.AppointmentService
}

func setup(t *testing.T) *env {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// a single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&models.User{}, &models.Doctor{}, &models.Patient{},
		&models.Appointment{}, &models.RefreshToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	e := &env{
		db: gdb,
		signer: &jwtutil.Signer{
			AccessSecret:  []byte("test-access-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
			Issuer:        "clinic-api",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    30 * 24 * time.Hour,
		},
	}
	e.users = repo.NewUserRepository(gdb)
	e.doctors = repo.NewDoctorRepository(gdb)
	e.patients = repo.NewPatientRepository(gdb)
	e.appointments = repo.NewAppointmentRepository(gdb)
	e.tokens = repo.NewRefreshTokenRepository(gdb)
	e.auth = services.NewAuthService(e.users, e.patients, e.tokens, e.signer)
	e.user = services.NewUserService(e.users)
	e.doctor = services.NewDoctorService(e.doctors, e.users)
	e.patient = services.NewPatientService(e.patients, e.users)
	e.appointment = services.NewAppointmentService(e.appointments, e.doctors, e.patients)
	return e
}

func (e *env) createUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	u := &models.User{Email: email, PasswordHash: string(hash), Role: role, Name: "Test " + email}
	if err := e.users.Create(u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func (e *env) createDoctor(t *testing.T, email string) (*models.User, *models.Doctor) {
	t.Helper()
	u := e.createUser(t, email, models.RoleDoctor)
	d := &models.Doctor{UserID: u.ID, Specialty: "General"}
	if err := e.doctors.Create(d); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return u, d
}

func (e *env) createPatient(t *testing.T, email string) (*models.User, *models.Patient) {
	t.Helper()
	u := e.createUser(t, email, models.RolePatient)
	p := &models.Patient{UserID: u.ID}
	if err := e.patients.Create(p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return u, p
}

func claimsFor(u *models.User) *jwtutil.Claims {
	return &jwtutil.Claims{UserID: u.ID, Role: u.Role}
}

func wantKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	var e *apperr.Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want apperr kind %d", err, kind)
	}
	if e.Kind != kind {
		t.Fatalf("error kind = %d (%s), want %d", e.Kind, e.Message, kind)
	}
}
