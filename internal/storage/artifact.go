// Package storage implements content-addressed artifact storage on a sharded
// directory tree: one directory per first hex character of the checksum, one
// subdirectory per first two, so fan-out is bounded to 16 then 256 entries
// and lookup from a checksum alone is O(1).
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/logger"

	"github.com/google/uuid"
)

const hexBase = "0123456789abcdef"

// ArchiveExt is the extension of stored mod archives
const ArchiveExt = "zip"

var checksumPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidChecksum reports whether s has the exact shape of a lowercase hex
// SHA-256 digest. Anything else must be rejected before it is used to build
// a filesystem path.
func ValidChecksum(s string) bool {
	return checksumPattern.MatchString(s)
}

// ArtifactStore persists blobs under a root directory, addressed by checksum
type ArtifactStore struct {
	root string
	log  *logger.Logger
}

// NewArtifactStore creates a store rooted at the given directory
func NewArtifactStore(root string) *ArtifactStore {
	return &ArtifactStore{root: root, log: logger.New().WithField("component", "artifact_store")}
}

// EnsureTree creates the shard directories and the temp staging directory
func (s *ArtifactStore) EnsureTree() error {
	if err := os.MkdirAll(filepath.Join(s.root, "tmp"), 0o755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	for _, first := range hexBase {
		for _, second := range hexBase {
			dir := filepath.Join(s.root, string(first), string(first)+string(second))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create shard dir %s: %w", dir, err)
			}
		}
	}
	return nil
}

// Put streams the reader into a per-upload-unique temporary file while
// feeding a SHA-256 accumulator. It returns the computed checksum and the
// temp path; the blob only reaches its content-addressed location once the
// caller invokes Commit after the owning catalog record is durable.
func (s *ArtifactStore) Put(r io.Reader) (checksum string, tmpPath string, err error) {
	tmpPath = filepath.Join(s.root, "tmp", uuid.NewString())

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", "", fmt.Errorf("create temp blob: %w", err)
	}

	h := sha256.New()
	_, err = io.Copy(io.MultiWriter(f, h), r)
	closeErr := f.Close()
	if err != nil {
		s.Discard(tmpPath)
		return "", "", fmt.Errorf("write temp blob: %w", err)
	}
	if closeErr != nil {
		s.Discard(tmpPath)
		return "", "", fmt.Errorf("close temp blob: %w", closeErr)
	}

	return hex.EncodeToString(h.Sum(nil)), tmpPath, nil
}

// Commit moves a temp blob into its final content-addressed location. A blob
// already present at the destination is identical by definition of the
// address, so a second writer finding it there succeeds.
func (s *ArtifactStore) Commit(tmpPath, checksum, ext string) error {
	if !ValidChecksum(checksum) {
		return apperrors.ErrInvalidChecksum
	}

	dest := s.pathFor(checksum, ext)
	if _, err := os.Stat(dest); err == nil {
		s.Discard(tmpPath)
		return nil
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("move blob into place: %w", err)
	}
	return nil
}

// Discard removes a temporary blob, best effort. Cleanup failures are logged,
// never surfaced.
func (s *ArtifactStore) Discard(tmpPath string) {
	if tmpPath == "" {
		return
	}
	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).Errorf("could not delete temp blob %s after a failed upload", tmpPath)
	}
}

// Open returns a reader over the stored blob for a checksum
func (s *ArtifactStore) Open(checksum string) (*os.File, error) {
	if !ValidChecksum(checksum) {
		return nil, apperrors.ErrInvalidChecksum
	}

	f, err := os.Open(s.pathFor(checksum, ArchiveExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNoContent
		}
		return nil, apperrors.NewInternal(err)
	}
	return f, nil
}

// Path returns the final content-addressed location for a checksum. The
// checksum must already be shape-validated.
func (s *ArtifactStore) Path(checksum string) (string, error) {
	if !ValidChecksum(checksum) {
		return "", apperrors.ErrInvalidChecksum
	}
	return s.pathFor(checksum, ArchiveExt), nil
}

func (s *ArtifactStore) pathFor(checksum, ext string) string {
	return filepath.Join(
		s.root,
		checksum[:1],
		checksum[:2],
		fmt.Sprintf("%s.%s", checksum, ext),
	)
}

// Reconcile checks every catalog checksum for a backing blob and logs the
// ones that are missing. A missing blob means a crash hit the window between
// catalog commit and blob move; this is an operational alert, not something
// the store repairs on its own.
func (s *ArtifactStore) Reconcile(checksums []string) {
	missing := 0
	for _, checksum := range checksums {
		if !ValidChecksum(checksum) {
			s.log.Errorf("catalog contains malformed checksum %q", checksum)
			continue
		}
		if _, err := os.Stat(s.pathFor(checksum, ArchiveExt)); os.IsNotExist(err) {
			s.log.Errorf("catalog checksum %s has no backing blob", checksum)
			missing++
		}
	}
	if missing > 0 {
		s.log.Errorf("reconciliation sweep found %d checksum(s) without blobs", missing)
	}
}
