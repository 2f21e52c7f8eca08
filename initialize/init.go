package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-api/app/controllers"
	"clinic-api/app/db"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/middleware"
	"clinic-api/app/models"
	"clinic-api/app/repo"
	"clinic-api/app/services"
	"clinic-api/config"
	"clinic-api/router"
)

type App struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	DB     *gorm.DB
	Rdb    *redis.Client
	Router http.Handler

	Auth         *services.AuthService
	Users        *services.UserService
	Doctors      *services.DoctorService
	Patients     *services.PatientService
	Appointments *services.AppointmentService
}

// Build loads config, connects the stores and wires the whole app.
func Build(configPath string, log zerolog.Logger) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{
		Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	return BuildWith(cfg, log, gdb, rdb)
}

// BuildWith wires the app onto an already-open database handle. Tests use it
// with an in-memory store.
func BuildWith(cfg *config.Config, log zerolog.Logger, gdb *gorm.DB, rdb *redis.Client) (*App, error) {
	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	doctorRepo := repo.NewDoctorRepository(gdb)
	patientRepo := repo.NewPatientRepository(gdb)
	appointmentRepo := repo.NewAppointmentRepository(gdb)
	tokenRepo := repo.NewRefreshTokenRepository(gdb)

	signer := &jwtutil.Signer{
		AccessSecret:  []byte(cfg.JWT.AccessSecret),
		RefreshSecret: []byte(cfg.JWT.RefreshSecret),
		Issuer:        cfg.JWT.Issuer,
		AccessTTL:     time.Duration(cfg.JWT.AccessMin) * time.Minute,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshDays) * 24 * time.Hour,
	}

	authSvc := services.NewAuthService(userRepo, patientRepo, tokenRepo, signer)
	userSvc := services.NewUserService(userRepo)
	doctorSvc := services.NewDoctorService(doctorRepo, userRepo)
	patientSvc := services.NewPatientService(patientRepo, userRepo)
	appointmentSvc := services.NewAppointmentService(appointmentRepo, doctorRepo, patientRepo)

	authCtrl := controllers.NewAuthController(authSvc, cfg.Production(), log)
	userCtrl := controllers.NewUserController(userSvc, log)
	doctorCtrl := controllers.NewDoctorController(doctorSvc, log)
	patientCtrl := controllers.NewPatientController(patientSvc, log)
	appointmentCtrl := controllers.NewAppointmentController(appointmentSvc, log)

	mw := &middleware.Auth{Signer: signer}
	throttle := &middleware.Throttle{
		Rdb:    rdb,
		Limit:  int64(cfg.Throttle.Limit),
		Window: time.Duration(cfg.Throttle.WindowSec) * time.Second,
		Log:    log,
	}

	h := router.New(authCtrl, userCtrl, doctorCtrl, patientCtrl, appointmentCtrl, mw, throttle)
	h = middleware.Logging(log, h)

	app := &App{
		Cfg: cfg, Log: log, DB: gdb, Rdb: rdb, Router: h,
		Auth: authSvc, Users: userSvc, Doctors: doctorSvc,
		Patients: patientSvc, Appointments: appointmentSvc,
	}

	if err := app.EnsureAdmin(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Warn().Err(err).Msg("ensure admin")
	}
	if cfg.Seed.Demo {
		if err := app.SeedDemo(); err != nil {
			log.Warn().Err(err).Msg("demo seed")
		}
	}
	return app, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.RefreshToken{},
	)
}
