package models

import "github.com/lib/pq"

// Ownership maps a mod name to its owning principal. The row is created on
// the first upload of a new name; every later upload of that name must come
// from the recorded owner. Checksums accumulates every checksum ever
// published under the name.
type Ownership struct {
	ModName   string         `json:"mod_name" gorm:"primaryKey;size:64"`
	OwnerID   int64          `json:"owner_id" gorm:"not null;index"`
	IsTeam    bool           `json:"is_team" gorm:"not null;default:false"`
	Checksums pq.StringArray `json:"checksums" gorm:"type:text[]"`
}

// TableName returns the table name for Ownership
func (Ownership) TableName() string {
	return "owners"
}
