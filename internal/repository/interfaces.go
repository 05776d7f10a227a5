package repository

import (
	"mod-registry-backend/internal/database/models"
)

// ModRepositoryInterface defines the contract for mod data access
type ModRepositoryInterface interface {
	Create(mod *models.Mod) error
	GetByChecksum(checksum string) (*models.Mod, error)
	GetByName(name string) ([]models.Mod, error)
	GetByNameVersion(name, version string) (*models.Mod, error)
	ListOrdered(sortBy models.SortBy, reverse bool) ([]models.Mod, error)
	IncrementDownloads(checksum string) error
	SetVerification(checksum string, state models.Verification) error
	AllChecksums() ([]string, error)
}

// OwnershipRepositoryInterface defines the contract for ownership data access
type OwnershipRepositoryInterface interface {
	Create(ownership *models.Ownership) error
	GetByName(name string) (*models.Ownership, error)
	AppendChecksum(name, checksum string) error
	Transfer(name string, teamID int64) error
}

// VerificationRepositoryInterface defines the contract for vote data access
type VerificationRepositoryInterface interface {
	CreateVote(vote *models.VerificationVote) error
	CountByPolarity(checksum string) (good int64, bad int64, err error)
}

// TeamRepositoryInterface defines the contract for team data access
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id int64) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByInvite(code string) (*models.Team, error)
	SetInvite(teamID int64, code string) error
	AddMember(member *models.TeamMember) error
	GetMember(teamID, memberID int64) (*models.TeamMember, error)
	GetWithMembers(id int64) (*models.Team, error)
}

// TokenRepositoryInterface defines the contract for token data access
type TokenRepositoryInterface interface {
	Create(token *models.Token) error
	GetByUserID(userID int64) (*models.Token, error)
	GetByToken(token string) (*models.Token, error)
	SetBanned(userID int64, banned bool) error
}
