package repo

import (
	"time"

	"gorm.io/gorm"

	"clinic-api/app/models"
)

type RefreshTokenRepository struct{ db *gorm.DB }

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(userID uint, token string, expiresAt time.Time) error {
	return r.db.Create(&models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *RefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// Revoke marks the token revoked. Rows are never deleted; revocation is
// permanent and idempotent.
func (r *RefreshTokenRepository) Revoke(token string) error {
	return r.db.Model(&models.RefreshToken{}).Where("token = ?", token).
		Update("revoked", true).Error
}
