package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "mod-registry-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ArtifactStore {
	store := NewArtifactStore(t.TempDir())
	require.NoError(t, store.EnsureTree())
	return store
}

func TestValidChecksum(t *testing.T) {
	sum := sha256.Sum256([]byte("payload"))
	good := hex.EncodeToString(sum[:])

	assert.True(t, ValidChecksum(good))

	assert.False(t, ValidChecksum(""))
	assert.False(t, ValidChecksum(good[:63]))
	assert.False(t, ValidChecksum(good+"0"))
	assert.False(t, ValidChecksum(strings.ToUpper(good)))
	assert.False(t, ValidChecksum(strings.Repeat("g", 64)))
	assert.False(t, ValidChecksum("../../../etc/passwd"))
}

func TestPutComputesChecksum(t *testing.T) {
	store := newTestStore(t)

	payload := []byte("mod archive bytes")
	sum := sha256.Sum256(payload)
	expected := hex.EncodeToString(sum[:])

	checksum, tmpPath, err := store.Put(strings.NewReader(string(payload)))
	require.NoError(t, err)
	defer store.Discard(tmpPath)

	assert.Equal(t, expected, checksum)

	// The blob is staged, not yet addressable
	_, err = store.Open(checksum)
	assert.True(t, errors.Is(err, apperrors.ErrNoContent))

	staged, err := os.ReadFile(tmpPath)
	require.NoError(t, err)
	assert.Equal(t, payload, staged)
}

func TestPutIsDeterministic(t *testing.T) {
	store := newTestStore(t)

	first, tmp1, err := store.Put(strings.NewReader("same content"))
	require.NoError(t, err)
	defer store.Discard(tmp1)

	second, tmp2, err := store.Put(strings.NewReader("same content"))
	require.NoError(t, err)
	defer store.Discard(tmp2)

	assert.Equal(t, first, second)
	assert.NotEqual(t, tmp1, tmp2, "each upload stages to its own temp file")
}

func TestCommitThenOpenRoundtrip(t *testing.T) {
	store := newTestStore(t)

	checksum, tmpPath, err := store.Put(strings.NewReader("round trip"))
	require.NoError(t, err)

	require.NoError(t, store.Commit(tmpPath, checksum, ArchiveExt))

	blob, err := store.Open(checksum)
	require.NoError(t, err)
	defer blob.Close()

	content, err := io.ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(content))
}

func TestCommitPlacesBlobInShardedPath(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	require.NoError(t, store.EnsureTree())

	checksum, tmpPath, err := store.Put(strings.NewReader("sharded"))
	require.NoError(t, err)
	require.NoError(t, store.Commit(tmpPath, checksum, ArchiveExt))

	path, err := store.Path(checksum)
	require.NoError(t, err)

	assert.Equal(t, checksum[:1], filepath.Base(filepath.Dir(filepath.Dir(path))))
	assert.Equal(t, checksum[:2], filepath.Base(filepath.Dir(path)))
	assert.Equal(t, checksum+".zip", filepath.Base(path))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCommitIdempotentForSameContent(t *testing.T) {
	store := newTestStore(t)

	checksum, tmp1, err := store.Put(strings.NewReader("duplicate"))
	require.NoError(t, err)
	require.NoError(t, store.Commit(tmp1, checksum, ArchiveExt))

	// A second staged copy of identical content commits cleanly and leaves
	// no temp file behind.
	_, tmp2, err := store.Put(strings.NewReader("duplicate"))
	require.NoError(t, err)
	require.NoError(t, store.Commit(tmp2, checksum, ArchiveExt))

	_, err = os.Stat(tmp2)
	assert.True(t, os.IsNotExist(err))
}

func TestCommitRejectsMalformedChecksum(t *testing.T) {
	store := newTestStore(t)

	_, tmpPath, err := store.Put(strings.NewReader("content"))
	require.NoError(t, err)
	defer store.Discard(tmpPath)

	err = store.Commit(tmpPath, "not-a-checksum", ArchiveExt)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidChecksum))
}

func TestOpenRejectsMalformedChecksum(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open("../escape")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidChecksum))

	_, err = store.Path("ZZZZ")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidChecksum))
}

func TestOpenMissingBlobIsNoContent(t *testing.T) {
	store := newTestStore(t)

	sum := sha256.Sum256([]byte("never stored"))
	_, err := store.Open(hex.EncodeToString(sum[:]))
	assert.True(t, errors.Is(err, apperrors.ErrNoContent))
}

func TestDiscardRemovesStagedBlob(t *testing.T) {
	store := newTestStore(t)

	_, tmpPath, err := store.Put(strings.NewReader("discard me"))
	require.NoError(t, err)

	store.Discard(tmpPath)

	_, err = os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(err))

	// Discarding again, or discarding nothing, must not panic
	store.Discard(tmpPath)
	store.Discard("")
}

func TestReconcileSurvivesMissingAndMalformed(t *testing.T) {
	store := newTestStore(t)

	checksum, tmpPath, err := store.Put(strings.NewReader("present"))
	require.NoError(t, err)
	require.NoError(t, store.Commit(tmpPath, checksum, ArchiveExt))

	missing := sha256.Sum256([]byte("missing"))

	// Logs, never panics or mutates
	store.Reconcile([]string{checksum, hex.EncodeToString(missing[:]), "malformed"})

	blob, err := store.Open(checksum)
	require.NoError(t, err)
	blob.Close()
}
