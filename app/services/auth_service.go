package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-api/app/apperr"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
	"clinic-api/app/repo"
)

type AuthService struct {
	users    *repo.UserRepository
	patients *repo.PatientRepository
	tokens   *repo.RefreshTokenRepository
	signer   *jwtutil.Signer
}

func NewAuthService(users *repo.UserRepository, patients *repo.PatientRepository, tokens *repo.RefreshTokenRepository, signer *jwtutil.Signer) *AuthService {
	return &AuthService{users: users, patients: patients, tokens: tokens, signer: signer}
}

func (s *AuthService) RefreshTTL() time.Duration { return s.signer.RefreshTTL }

// Register creates a user. Role defaults to PATIENT; a PATIENT registration
// also creates the linked patient row so the account can book appointments
// right away.
func (s *AuthService) Register(email, password string, role models.Role, name string) (*models.User, error) {
	if email == "" {
		return nil, apperr.Validationf("email is required")
	}
	if password == "" {
		return nil, apperr.Validationf("password is required")
	}
	if name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if role == "" {
		role = models.RolePatient
	}
	if !role.Valid() {
		return nil, apperr.Validationf("invalid role")
	}

	if n, err := s.users.CountByEmail(email); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, apperr.Conflictf("Email already used")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{Email: email, PasswordHash: string(hash), Role: role, Name: name}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}

	if role == models.RolePatient {
		if err := s.patients.Create(&models.Patient{UserID: u.ID}); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Login verifies credentials and issues both token kinds. The refresh token
// is persisted with its expiry so it can be revoked server-side later.
func (s *AuthService) Login(email, password string) (access, refresh string, err error) {
	if email == "" || password == "" {
		return "", "", apperr.Validationf("email and password are required")
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperr.Unauthenticated("Invalid credentials")
		}
		return "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", "", apperr.Unauthenticated("Invalid credentials")
	}

	access, err = s.signer.SignAccess(u.ID, u.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.signer.SignRefresh(u.ID, u.Role)
	if err != nil {
		return "", "", err
	}
	if err := s.tokens.Create(u.ID, refresh, time.Now().Add(s.signer.RefreshTTL)); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh exchanges a stored, unrevoked refresh token for a new access token.
// The refresh token itself is not rotated. Store lookup comes first: a token
// that was revoked stays dead even while cryptographically valid.
func (s *AuthService) Refresh(raw string) (string, error) {
	rt, err := s.tokens.FindByToken(raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Unauthenticated("Invalid refresh token")
		}
		return "", err
	}
	if rt.Revoked {
		return "", apperr.Unauthenticated("Invalid refresh token")
	}
	claims, err := s.signer.ParseRefresh(raw)
	if err != nil {
		return "", apperr.Unauthenticated("Invalid token")
	}
	return s.signer.SignAccess(claims.UserID, claims.Role)
}

// Logout revokes the refresh token. Unknown tokens are ignored so the
// operation stays idempotent.
func (s *AuthService) Logout(raw string) error {
	return s.tokens.Revoke(raw)
}
