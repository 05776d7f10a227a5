package models

import "time"

// Team is a named group of members that can collectively own mods. Invite
// holds the single active invite code, created lazily.
type Team struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex" validate:"required,min=1,max=64"`
	Invite    *string   `json:"invite,omitempty" gorm:"size:7;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team with a team-scoped role bitmask.
type TeamMember struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TeamID   int64     `json:"team_id" gorm:"not null;uniqueIndex:idx_team_member"`
	MemberID int64     `json:"member_id" gorm:"not null;uniqueIndex:idx_team_member"`
	Roles    TeamRoles `json:"roles" gorm:"not null;default:0"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
