package models

import "time"

// VerificationVote is one verifier judgement on one checksum. Yank entries
// reuse the table with a nil IsGood, which keeps the one-entry-per-verifier
// rule uniform across votes and yanks.
type VerificationVote struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Checksum   string    `json:"checksum" gorm:"not null;size:64;uniqueIndex:idx_votes_checksum_verifier"`
	VerifierID int64     `json:"verifier_id" gorm:"not null;uniqueIndex:idx_votes_checksum_verifier"`
	IsGood     *bool     `json:"is_good"`
	Reason     *string   `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for VerificationVote
func (VerificationVote) TableName() string {
	return "verification"
}
