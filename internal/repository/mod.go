package repository

import (
	"fmt"

	"mod-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// ModRepository handles database operations for mods
type ModRepository struct {
	db *gorm.DB
}

// NewModRepository creates a new mod repository
func NewModRepository(db *gorm.DB) *ModRepository {
	return &ModRepository{db: db}
}

// Create inserts a new mod row. A duplicate checksum surfaces as
// gorm.ErrDuplicatedKey.
func (r *ModRepository) Create(mod *models.Mod) error {
	return r.db.Create(mod).Error
}

// GetByChecksum retrieves a mod by its checksum
func (r *ModRepository) GetByChecksum(checksum string) (*models.Mod, error) {
	var mod models.Mod
	err := r.db.First(&mod, "checksum = ?", checksum).Error
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

// GetByName retrieves every published version of a logical mod name
func (r *ModRepository) GetByName(name string) ([]models.Mod, error) {
	var mods []models.Mod
	err := r.db.Where("name = ?", name).Find(&mods).Error
	return mods, err
}

// GetByNameVersion retrieves the single mod for a (name, version) pair
func (r *ModRepository) GetByNameVersion(name, version string) (*models.Mod, error) {
	var mod models.Mod
	err := r.db.First(&mod, "name = ? AND version = ?", name, version).Error
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

// ListOrdered retrieves all mods pre-sorted by the given key. The sort key is
// restricted to the SortBy allow-list before it reaches the ORDER BY clause.
func (r *ModRepository) ListOrdered(sortBy models.SortBy, reverse bool) ([]models.Mod, error) {
	if !sortBy.IsValid() {
		return nil, fmt.Errorf("sort key %q is not allowed", sortBy)
	}

	direction := "DESC"
	if reverse {
		direction = "ASC"
	}

	var mods []models.Mod
	err := r.db.Order(fmt.Sprintf("%s %s", sortBy.Column(), direction)).Find(&mods).Error
	return mods, err
}

// IncrementDownloads bumps the download counter for a checksum
func (r *ModRepository) IncrementDownloads(checksum string) error {
	return r.db.Model(&models.Mod{}).
		Where("checksum = ?", checksum).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
}

// SetVerification updates the trust state of a checksum
func (r *ModRepository) SetVerification(checksum string, state models.Verification) error {
	return r.db.Model(&models.Mod{}).
		Where("checksum = ?", checksum).
		Update("verification", state).Error
}

// AllChecksums lists every checksum in the catalog, for the startup
// blob reconciliation sweep
func (r *ModRepository) AllChecksums() ([]string, error) {
	var checksums []string
	err := r.db.Model(&models.Mod{}).Pluck("checksum", &checksums).Error
	return checksums, err
}
