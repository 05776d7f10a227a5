package service

import (
	"crypto/rand"
	"errors"
	"fmt"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const inviteAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// inviteLength is the length of a team invite code
const inviteLength = 7

// inviteRetryCap bounds collision retries; exhausting it means the code
// space is effectively saturated and the operation fails hard rather than
// spinning.
const inviteRetryCap = 16

// TeamService handles team membership, invites, and ownership transfer
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	owners    repository.OwnershipRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, owners repository.OwnershipRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{teams: teams, owners: owners, validator: validator}
}

// CreateTeamRequest is the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// TeamMemberResponse is one membership row in a team response
type TeamMemberResponse struct {
	MemberID int64            `json:"member_id"`
	Roles    models.TeamRoles `json:"roles"`
}

// TeamResponse is the response for team operations
type TeamResponse struct {
	ID      int64                `json:"id"`
	Name    string               `json:"name"`
	Members []TeamMemberResponse `json:"members,omitempty"`
}

// Create creates a team and installs the requester as its owner
func (s *TeamService) Create(requesterID int64, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewBadRequest("Invalid team name: %v", err)
	}

	team := &models.Team{Name: req.Name}
	if err := s.teams.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamNameTaken
		}
		return nil, apperrors.NewInternal(err)
	}

	member := &models.TeamMember{
		TeamID:   team.ID,
		MemberID: requesterID,
		Roles:    models.TeamRoleOwner,
	}
	if err := s.teams.AddMember(member); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &TeamResponse{ID: team.ID, Name: team.Name}, nil
}

// Invite returns a join URL for the team, minting the code lazily. A team
// holds at most one active code; an existing one is reused.
func (s *TeamService) Invite(teamID, requesterID int64) (string, error) {
	if _, err := s.teams.GetMember(teamID, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewUnauthorized("")
		}
		return "", apperrors.NewInternal(err)
	}

	team, err := s.teams.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewBadRequest("This team does not exist.")
		}
		return "", apperrors.NewInternal(err)
	}

	if team.Invite != nil {
		return inviteURL(*team.Invite), nil
	}

	for attempt := 0; attempt < inviteRetryCap; attempt++ {
		code, err := generateInviteCode()
		if err != nil {
			return "", apperrors.NewInternal(err)
		}

		err = s.teams.SetInvite(teamID, code)
		if err == nil {
			return inviteURL(code), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.NewInternal(err)
		}
		// Collision with another team's active code; draw again.
	}

	return "", apperrors.NewInternal(apperrors.ErrInviteExhausted)
}

// Join adds the requester to the team behind an invite code, with no roles.
// Role assignment is a separate administrative action.
func (s *TeamService) Join(code string, requesterID int64) (*TeamResponse, error) {
	team, err := s.teams.GetByInvite(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewBadRequest("Invalid invite code.")
		}
		return nil, apperrors.NewInternal(err)
	}

	member := &models.TeamMember{TeamID: team.ID, MemberID: requesterID}
	if err := s.teams.AddMember(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewBadRequest("You are already a member of this team.")
		}
		return nil, apperrors.NewInternal(err)
	}

	// The joiner sees who they just joined; members are loaded in one query.
	withMembers, err := s.teams.GetWithMembers(team.ID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	response := &TeamResponse{ID: withMembers.ID, Name: withMembers.Name}
	for _, row := range withMembers.Members {
		response.Members = append(response.Members, TeamMemberResponse{MemberID: row.MemberID, Roles: row.Roles})
	}
	return response, nil
}

// TransferMod reassigns a mod name from its individual owner to a team. The
// requester must both own the name and hold the team OWNER role; any failed
// precondition is Unauthorized, and nothing is partially applied.
func (s *TeamService) TransferMod(name string, teamID, requesterID int64) error {
	ownership, err := s.owners.GetByName(name)
	if err != nil || ownership.IsTeam || ownership.OwnerID != requesterID {
		return apperrors.NewUnauthorized("")
	}

	member, err := s.teams.GetMember(teamID, requesterID)
	if err != nil || !member.Roles.Has(models.TeamRoleOwner) {
		return apperrors.NewUnauthorized("")
	}

	if err := s.owners.Transfer(name, teamID); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

func inviteURL(code string) string {
	return fmt.Sprintf("/teams/join/%s", code)
}

// generateInviteCode draws an invite code from the base62 alphabet
func generateInviteCode() (string, error) {
	buf := make([]byte, inviteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(buf), nil
}
