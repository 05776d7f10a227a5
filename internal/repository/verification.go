package repository

import (
	"mod-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// VerificationRepository handles database operations for verification votes
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// CreateVote inserts a vote. Racing submissions for the same
// (checksum, verifier) pair are resolved by the unique index: the loser gets
// gorm.ErrDuplicatedKey, never a lost update.
func (r *VerificationRepository) CreateVote(vote *models.VerificationVote) error {
	return r.db.Create(vote).Error
}

// CountByPolarity tallies recorded votes for a checksum. Yank entries carry
// a nil is_good and count toward neither polarity.
func (r *VerificationRepository) CountByPolarity(checksum string) (good int64, bad int64, err error) {
	err = r.db.Model(&models.VerificationVote{}).
		Where("checksum = ? AND is_good = ?", checksum, true).
		Count(&good).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Model(&models.VerificationVote{}).
		Where("checksum = ? AND is_good = ?", checksum, false).
		Count(&bad).Error
	if err != nil {
		return 0, 0, err
	}

	return good, bad, nil
}
