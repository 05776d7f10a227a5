package repository

import (
	"mod-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// TokenRepository handles database operations for registry tokens
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a token row. A concurrent first issuance for the same
// principal loses on the primary key and surfaces as gorm.ErrDuplicatedKey.
func (r *TokenRepository) Create(token *models.Token) error {
	return r.db.Create(token).Error
}

// GetByUserID retrieves the token row for a principal
func (r *TokenRepository) GetByUserID(userID int64) (*models.Token, error) {
	var token models.Token
	err := r.db.First(&token, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// GetByToken retrieves a token row by its token string
func (r *TokenRepository) GetByToken(tokenString string) (*models.Token, error) {
	var token models.Token
	err := r.db.First(&token, "token = ?", tokenString).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// SetBanned flips the ban flag for a principal. Banning is the only
// post-creation lifecycle event a token has.
func (r *TokenRepository) SetBanned(userID int64, banned bool) error {
	return r.db.Model(&models.Token{}).
		Where("user_id = ?", userID).
		Update("is_banned", banned).Error
}
