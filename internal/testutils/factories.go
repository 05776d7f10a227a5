package testutils

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"mod-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

// RandomChecksum returns a well-formed, unique artifact checksum
func RandomChecksum() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])
}

// ModFactory provides methods to create test Mod data
type ModFactory struct{}

// NewModFactory creates a new ModFactory
func NewModFactory() *ModFactory {
	return &ModFactory{}
}

// Create creates a test Mod with default values
func (f *ModFactory) Create() *models.Mod {
	return &models.Mod{
		Checksum:     RandomChecksum(),
		Name:         "test-mod",
		Version:      "1.0.0",
		Description:  "A test mod for testing purposes",
		Verification: models.VerificationNone,
		Downloads:    0,
		Uploaded:     time.Now(),
		Keywords:     []string{"test"},
	}
}

// WithName sets a custom name for the mod
func (f *ModFactory) WithName(name string) *models.Mod {
	mod := f.Create()
	mod.Name = name
	return mod
}

// WithVersion sets a custom version for the mod
func (f *ModFactory) WithVersion(name, version string) *models.Mod {
	mod := f.Create()
	mod.Name = name
	mod.Version = version
	return mod
}

// WithVerification sets a custom trust state for the mod
func (f *ModFactory) WithVerification(state models.Verification) *models.Mod {
	mod := f.Create()
	mod.Verification = state
	return mod
}

// TokenFactory provides methods to create test Token data
type TokenFactory struct{}

// NewTokenFactory creates a new TokenFactory
func NewTokenFactory() *TokenFactory {
	return &TokenFactory{}
}

// Create creates a test Token with default values
func (f *TokenFactory) Create(userID int64) *models.Token {
	return &models.Token{
		UserID:   userID,
		Email:    "user@test.com",
		Token:    uuid.NewString(),
		Roles:    0,
		IsBanned: false,
		IsTeam:   false,
	}
}

// WithRoles creates a token carrying the given role bitmask
func (f *TokenFactory) WithRoles(userID int64, roles models.Roles) *models.Token {
	token := f.Create(userID)
	token.Roles = roles
	return token
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name: "Test Team " + uuid.NewString()[:8],
	}
}

// OwnershipFactory provides methods to create test Ownership data
type OwnershipFactory struct{}

// NewOwnershipFactory creates a new OwnershipFactory
func NewOwnershipFactory() *OwnershipFactory {
	return &OwnershipFactory{}
}

// Create creates a test Ownership row for a mod name and owner
func (f *OwnershipFactory) Create(name string, ownerID int64) *models.Ownership {
	return &models.Ownership{
		ModName:   name,
		OwnerID:   ownerID,
		IsTeam:    false,
		Checksums: []string{},
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Mod       *ModFactory
	Token     *TokenFactory
	Team      *TeamFactory
	Ownership *OwnershipFactory
	Vote      *VoteFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Mod:       NewModFactory(),
		Token:     NewTokenFactory(),
		Team:      NewTeamFactory(),
		Ownership: NewOwnershipFactory(),
		Vote:      NewVoteFactory(),
	}
}

// VoteFactory provides methods to create test VerificationVote data
type VoteFactory struct{}

// NewVoteFactory creates a new VoteFactory
func NewVoteFactory() *VoteFactory {
	return &VoteFactory{}
}

// Create creates a test vote on a checksum
func (f *VoteFactory) Create(checksum string, verifierID int64, isGood bool) *models.VerificationVote {
	reason := "This mod was reviewed end to end and the archive matches its published source repository."
	return &models.VerificationVote{
		Checksum:   checksum,
		VerifierID: verifierID,
		IsGood:     &isGood,
		Reason:     &reason,
	}
}
