package models

import (
	"time"

	"github.com/lib/pq"
)

// Mod represents a single uploaded artifact, keyed by the SHA-256 checksum
// of its archive. (name, version) is expected to map to exactly one checksum;
// that invariant is enforced by the upload path, not by a database key.
type Mod struct {
	Checksum     string       `json:"checksum" gorm:"primaryKey;size:64"`
	Name         string       `json:"name" gorm:"not null;index" validate:"required,min=1,max=64"`
	Version      string       `json:"version" gorm:"not null" validate:"required"`
	Description  string       `json:"description" gorm:"not null"`
	Verification Verification `json:"verification" gorm:"not null;default:'None'"`
	Downloads    int64        `json:"downloads" gorm:"not null;default:0"`
	Uploaded     time.Time    `json:"uploaded" gorm:"not null;autoCreateTime"`

	// Frozen at upload time. Dependencies are resolved to checksums once and
	// never re-resolved, so published artifacts keep their historical meaning.
	DependencyChecksums pq.StringArray `json:"dependency_checksums" gorm:"type:text[]"`
	NativeLibChecksums  pq.StringArray `json:"native_lib_checksums" gorm:"type:text[]"`

	RepositoryGit   *string        `json:"repository_git,omitempty"`
	RepositoryHg    *string        `json:"repository_hg,omitempty"`
	Authors         pq.StringArray `json:"authors,omitempty" gorm:"type:text[]"`
	Documentation   *string        `json:"documentation,omitempty"`
	Readme          *string        `json:"readme,omitempty"`
	ReadmeFilename  *string        `json:"readme_filename,omitempty"`
	License         *string        `json:"license,omitempty"`
	LicenseFilename *string        `json:"license_filename,omitempty"`
	Homepage        *string        `json:"homepage,omitempty"`
	Keywords        pq.StringArray `json:"keywords,omitempty" gorm:"type:text[]"`
	BuildScript     *string        `json:"build_script,omitempty"`
	Metadata        pq.StringArray `json:"metadata,omitempty" gorm:"type:text[]"`
}

// TableName returns the table name for Mod
func (Mod) TableName() string {
	return "mods"
}
