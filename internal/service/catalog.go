package service

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/logger"
	"mod-registry-backend/internal/repository"
	"mod-registry-backend/internal/storage"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DownloadPathPrefix is the public route a client fetches blobs from
const DownloadPathPrefix = "/public_api/download/"

// CatalogService handles upload validation and version resolution
type CatalogService struct {
	mods      repository.ModRepositoryInterface
	owners    repository.OwnershipRepositoryInterface
	store     *storage.ArtifactStore
	validator *validator.Validate
	log       *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(mods repository.ModRepositoryInterface, owners repository.OwnershipRepositoryInterface, store *storage.ArtifactStore, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		mods:      mods,
		owners:    owners,
		store:     store,
		validator: validator,
		log:       logger.New().WithField("component", "catalog"),
	}
}

// ModDependency names one dependency by its logical (name, version) pair.
// It is resolved to a checksum at upload time and frozen there.
type ModDependency struct {
	Name    string `json:"name" validate:"required"`
	Version string `json:"version" validate:"required"`
}

// ModMetadata is the metadata document accompanying an uploaded archive
type ModMetadata struct {
	Name        string `json:"name" validate:"required,min=1,max=64"`
	Version     string `json:"version" validate:"required"`
	Description string `json:"description" validate:"required"`

	RepositoryGit *string `json:"repository_git,omitempty"`
	RepositoryHg  *string `json:"repository_hg,omitempty"`

	Authors         []string `json:"authors,omitempty"`
	Documentation   *string  `json:"documentation,omitempty"`
	Readme          *string  `json:"readme,omitempty"`
	ReadmeFilename  *string  `json:"readme_filename,omitempty"`
	License         *string  `json:"license,omitempty"`
	LicenseFilename *string  `json:"license_filename,omitempty"`
	Homepage        *string  `json:"homepage,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	BuildScript     *string  `json:"build_script,omitempty"`

	Dependencies []ModDependency `json:"dependencies,omitempty" validate:"dive"`

	Metadata []string `json:"metadata,omitempty"`
}

// ModResponse is the resolved view of one artifact. Files lists the download
// paths for the artifact itself plus every bundled and dependency blob.
type ModResponse struct {
	Checksum     string              `json:"checksum"`
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	Description  string              `json:"description"`
	Verification models.Verification `json:"verification"`
	Files        []string            `json:"files"`
	Downloads    int64               `json:"downloads"`
	Uploaded     string              `json:"uploaded"`

	RepositoryGit   *string  `json:"repository_git,omitempty"`
	RepositoryHg    *string  `json:"repository_hg,omitempty"`
	Authors         []string `json:"authors,omitempty"`
	Documentation   *string  `json:"documentation,omitempty"`
	Readme          *string  `json:"readme,omitempty"`
	ReadmeFilename  *string  `json:"readme_filename,omitempty"`
	License         *string  `json:"license,omitempty"`
	LicenseFilename *string  `json:"license_filename,omitempty"`
	Homepage        *string  `json:"homepage,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	BuildScript     *string  `json:"build_script,omitempty"`
	Metadata        []string `json:"metadata,omitempty"`
}

// StageArchive streams an uploaded archive into a private temp blob and
// returns its checksum. The blob stays staged until CompleteUpload moves it
// into the content-addressed tree or DiscardStaged throws it away.
func (s *CatalogService) StageArchive(archive io.Reader) (checksum string, tmpPath string, err error) {
	checksum, tmpPath, err = s.store.Put(archive)
	if err != nil {
		return "", "", apperrors.NewInternal(err)
	}
	return checksum, tmpPath, nil
}

// DiscardStaged drops a staged blob after a failed upload
func (s *CatalogService) DiscardStaged(tmpPath string) {
	s.store.Discard(tmpPath)
}

// CompleteUpload validates the metadata document against the staged archive
// and persists the catalog record. Every validation failure before the
// catalog commit discards the staged blob and reports the reason. The blob
// only moves to its content-addressed location after the catalog row is
// durable.
func (s *CatalogService) CompleteUpload(callerID int64, metadataJSON []byte, checksum, tmpPath string) (*ModResponse, error) {
	var meta ModMetadata
	if err := json.Unmarshal(metadataJSON, &meta); err != nil {
		s.store.Discard(tmpPath)
		return nil, apperrors.NewBadRequest("Invalid format found on the data json: %v", err)
	}
	if err := s.validator.Struct(&meta); err != nil {
		s.store.Discard(tmpPath)
		return nil, apperrors.NewBadRequest("Invalid metadata: %v", err)
	}

	if _, err := semver.StrictNewVersion(meta.Version); err != nil {
		s.store.Discard(tmpPath)
		return nil, apperrors.NewBadRequest("The version is not a valid semver: %v", err)
	}

	dependencyChecksums, err := s.resolveDependencies(meta.Dependencies)
	if err != nil {
		s.store.Discard(tmpPath)
		return nil, err
	}

	if err := s.checkOrClaimOwnership(callerID, meta.Name); err != nil {
		s.store.Discard(tmpPath)
		return nil, err
	}

	mod := &models.Mod{
		Checksum:            checksum,
		Name:                meta.Name,
		Version:             meta.Version,
		Description:         meta.Description,
		Verification:        models.VerificationNone,
		DependencyChecksums: dependencyChecksums,
		RepositoryGit:       meta.RepositoryGit,
		RepositoryHg:        meta.RepositoryHg,
		Authors:             meta.Authors,
		Documentation:       meta.Documentation,
		Readme:              meta.Readme,
		ReadmeFilename:      meta.ReadmeFilename,
		License:             meta.License,
		LicenseFilename:     meta.LicenseFilename,
		Homepage:            meta.Homepage,
		Keywords:            meta.Keywords,
		BuildScript:         meta.BuildScript,
		Metadata:            meta.Metadata,
	}

	if err := s.mods.Create(mod); err != nil {
		s.store.Discard(tmpPath)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewBadRequest("This archive has already been uploaded.")
		}
		return nil, apperrors.NewBadRequest("Database error: %v", err)
	}

	if err := s.owners.AppendChecksum(meta.Name, checksum); err != nil {
		s.log.WithError(err).Errorf("could not append checksum %s to owner record for %s", checksum, meta.Name)
	}

	// The catalog row is durable; a crash from here until the move completes
	// leaves a record without a blob. That window is surfaced by the startup
	// reconciliation sweep, never silently retried.
	if err := s.store.Commit(tmpPath, checksum, storage.ArchiveExt); err != nil {
		s.log.WithError(err).Errorf("ALERT: committed mod %s@%s (%s) has no stored blob", meta.Name, meta.Version, checksum)
		return nil, apperrors.NewInternal(err)
	}

	return s.toResponse(mod), nil
}

func (s *CatalogService) resolveDependencies(deps []ModDependency) ([]string, error) {
	checksums := make([]string, 0, len(deps))
	for _, dep := range deps {
		row, err := s.mods.GetByNameVersion(dep.Name, dep.Version)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewBadRequest("At least one of the dependencies is missing or invalid.")
			}
			return nil, apperrors.NewInternal(err)
		}
		checksums = append(checksums, row.Checksum)
	}
	return checksums, nil
}

// checkOrClaimOwnership enforces the ownership invariant: the first upload of
// a name claims it, every later one must come from the recorded owner. A
// concurrent claim race is settled by the owners primary key; the loser is
// rejected, not merged.
func (s *CatalogService) checkOrClaimOwnership(callerID int64, name string) error {
	ownership, err := s.owners.GetByName(name)
	if err == nil {
		if ownership.IsTeam || ownership.OwnerID != callerID {
			return apperrors.ErrNotModOwner
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewInternal(err)
	}

	// No owner recorded. Any existing row under the name means the catalog
	// predates ownership bookkeeping for it; reject rather than adopt.
	existing, err := s.mods.GetByName(name)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if len(existing) > 0 {
		return apperrors.ErrNotModOwner
	}

	claim := &models.Ownership{ModName: name, OwnerID: callerID, Checksums: []string{}}
	if err := s.owners.Create(claim); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrNotModOwner
		}
		return apperrors.NewInternal(err)
	}
	return nil
}

// Resolve returns the single best-matching artifact for a name: the highest
// semantic version at or above the trust floor that satisfies the
// constraint, if one was given. Nothing surviving the filters is the normal
// NoContent outcome, not an error.
func (s *CatalogService) Resolve(name string, constraintExpr *string, minTrust models.Verification) (*ModResponse, error) {
	var constraint *semver.Constraints
	if constraintExpr != nil && *constraintExpr != "" {
		parsed, err := semver.NewConstraint(*constraintExpr)
		if err != nil {
			return nil, apperrors.NewBadRequest("Invalid semver provided: %v", err)
		}
		constraint = parsed
	}

	rows, err := s.mods.GetByName(name)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	var best *models.Mod
	var bestVersion *semver.Version
	for i := range rows {
		row := &rows[i]
		if row.Verification.TrustRank() < minTrust.TrustRank() {
			continue
		}

		version, err := semver.StrictNewVersion(row.Version)
		if err != nil {
			// Upload validation guarantees parseable versions; a bad row is
			// corrupt data, skip it.
			s.log.Errorf("mod %s has unparseable version %q", row.Checksum, row.Version)
			continue
		}
		if constraint != nil && !constraint.Check(version) {
			continue
		}

		if bestVersion == nil || version.GreaterThan(bestVersion) {
			best = row
			bestVersion = version
		}
	}

	if best == nil {
		return nil, apperrors.ErrNoContent
	}
	return s.toResponse(best), nil
}

// Download opens the stored blob for a checksum and bumps the download
// counter. The counter update must not block the transfer: a failure there
// is logged and the blob is served anyway.
func (s *CatalogService) Download(checksum string) (io.ReadCloser, error) {
	blob, err := s.store.Open(checksum)
	if err != nil {
		return nil, err
	}

	if err := s.mods.IncrementDownloads(checksum); err != nil {
		s.log.WithError(err).Errorf("could not increment downloads for %s", checksum)
	}

	return blob, nil
}

func (s *CatalogService) toResponse(mod *models.Mod) *ModResponse {
	files := make([]string, 0, len(mod.NativeLibChecksums)+len(mod.DependencyChecksums)+1)
	for _, checksum := range mod.NativeLibChecksums {
		files = append(files, DownloadPathPrefix+checksum)
	}
	for _, checksum := range mod.DependencyChecksums {
		files = append(files, DownloadPathPrefix+checksum)
	}
	files = append(files, DownloadPathPrefix+mod.Checksum)

	return &ModResponse{
		Checksum:        mod.Checksum,
		Name:            mod.Name,
		Version:         mod.Version,
		Description:     mod.Description,
		Verification:    mod.Verification,
		Files:           files,
		Downloads:       mod.Downloads,
		Uploaded:        mod.Uploaded.Format(time.RFC3339),
		RepositoryGit:   mod.RepositoryGit,
		RepositoryHg:    mod.RepositoryHg,
		Authors:         mod.Authors,
		Documentation:   mod.Documentation,
		Readme:          mod.Readme,
		ReadmeFilename:  mod.ReadmeFilename,
		License:         mod.License,
		LicenseFilename: mod.LicenseFilename,
		Homepage:        mod.Homepage,
		Keywords:        mod.Keywords,
		BuildScript:     mod.BuildScript,
		Metadata:        mod.Metadata,
	}
}
