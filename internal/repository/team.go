package repository

import (
	"mod-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts a new team. A duplicate name surfaces as
// gorm.ErrDuplicatedKey.
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByInvite resolves a team from an active invite code
func (r *TeamRepository) GetByInvite(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "invite = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// SetInvite stores the team's single active invite code. Collisions with
// another team's code lose on the unique index.
func (r *TeamRepository) SetInvite(teamID int64, code string) error {
	return r.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("invite", code).Error
}

// AddMember inserts a team membership row
func (r *TeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetMember retrieves one membership row, if present
func (r *TeamRepository) GetMember(teamID, memberID int64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND member_id = ?", teamID, memberID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}
