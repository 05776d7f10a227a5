package models

import "time"

// Token is the registry bearer credential for one principal. A token is
// minted once on the first issuance call and never rotated automatically;
// the only lifecycle event after creation is an operator banning it.
type Token struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"not null"`
	Token     string    `json:"token" gorm:"not null;uniqueIndex"`
	Roles     Roles     `json:"roles" gorm:"not null;default:0"`
	IsBanned  bool      `json:"is_banned" gorm:"not null;default:false"`
	IsTeam    bool      `json:"is_team" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Token
func (Token) TableName() string {
	return "tokens"
}
