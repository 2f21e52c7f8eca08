package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-api/app/apperr"
	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
	"clinic-api/app/policy"
	"clinic-api/app/repo"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) List(requestor *jwtutil.Claims, page, limit int) ([]models.User, error) {
	if !policy.CanAccess(requestor.Role, policy.ListUsers, false) {
		return nil, apperr.Forbidden()
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.users.List((page-1)*limit, limit)
}

func (s *UserService) Get(requestor *jwtutil.Claims, id uint) (*models.User, error) {
	if !policy.CanAccess(requestor.Role, policy.ReadUser, requestor.UserID == id) {
		return nil, apperr.Forbidden()
	}
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, err
	}
	return u, nil
}

// Update changes name, email or password for self (any role) or any user
// (admin). Role is deliberately not updatable.
func (s *UserService) Update(requestor *jwtutil.Claims, id uint, name, email, password string) (*models.User, error) {
	if !policy.CanAccess(requestor.Role, policy.UpdateUser, requestor.UserID == id) {
		return nil, apperr.Forbidden()
	}
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		return nil, err
	}

	if name != "" {
		u.Name = name
	}
	if email != "" && email != u.Email {
		if n, err := s.users.CountByEmail(email); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, apperr.Conflictf("Email already in use")
		}
		u.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the user and cascades to dependent doctor/patient rows.
func (s *UserService) Delete(requestor *jwtutil.Claims, id uint) error {
	if !policy.CanAccess(requestor.Role, policy.DeleteUser, false) {
		return apperr.Forbidden()
	}
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("User not found")
		}
		return err
	}
	return s.users.DeleteCascade(id)
}
