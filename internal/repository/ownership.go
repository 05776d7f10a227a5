package repository

import (
	"mod-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// OwnershipRepository handles database operations for mod ownership
type OwnershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// Create inserts the ownership row for a newly published name. A concurrent
// first upload of the same name loses on the primary key and surfaces as
// gorm.ErrDuplicatedKey.
func (r *OwnershipRepository) Create(ownership *models.Ownership) error {
	return r.db.Create(ownership).Error
}

// GetByName retrieves the ownership record for a mod name
func (r *OwnershipRepository) GetByName(name string) (*models.Ownership, error) {
	var ownership models.Ownership
	err := r.db.First(&ownership, "mod_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &ownership, nil
}

// AppendChecksum records one more published checksum under a name
func (r *OwnershipRepository) AppendChecksum(name, checksum string) error {
	return r.db.Model(&models.Ownership{}).
		Where("mod_name = ?", name).
		UpdateColumn("checksums", gorm.Expr("array_append(checksums, ?)", checksum)).Error
}

// Transfer reassigns a name to a team in one conditional write
func (r *OwnershipRepository) Transfer(name string, teamID int64) error {
	result := r.db.Model(&models.Ownership{}).
		Where("mod_name = ?", name).
		Updates(map[string]interface{}{"owner_id": teamID, "is_team": true})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
