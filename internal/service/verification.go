package service

import (
	"errors"
	"strings"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/logger"
	"mod-registry-backend/internal/repository"

	"gorm.io/gorm"
)

// voteQuorum is the number of same-polarity votes that settles a checksum
const voteQuorum = 2

// minReasonLength is the minimum length of a rejection reason
const minReasonLength = 60

// VerificationService owns the trust state machine: it is the only writer of
// the verification field on mods, and the only writer of vote rows.
type VerificationService struct {
	mods   repository.ModRepositoryInterface
	owners repository.OwnershipRepositoryInterface
	votes  repository.VerificationRepositoryInterface
	log    *logger.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(mods repository.ModRepositoryInterface, owners repository.OwnershipRepositoryInterface, votes repository.VerificationRepositoryInterface) *VerificationService {
	return &VerificationService{
		mods:   mods,
		owners: owners,
		votes:  votes,
		log:    logger.New().WithField("component", "verification"),
	}
}

// VoteRequest is one verifier judgement on a checksum
type VoteRequest struct {
	Checksum string  `json:"checksum"`
	IsGood   bool    `json:"is_good"`
	Reason   *string `json:"reason,omitempty"`
}

// VoteResult reports what the vote did to the checksum's state
type VoteResult struct {
	Message string              `json:"message"`
	State   models.Verification `json:"state"`
}

// Vote records a verifier's judgement and runs the tally. The caller must
// hold the VERIFIER role; the checksum must exist and not be in a state
// terminal for voting. A second vote from the same verifier is a conflict.
func (s *VerificationService) Vote(caller *models.Token, req *VoteRequest) (*VoteResult, error) {
	if !caller.Roles.Has(models.RoleVerifier) {
		return nil, apperrors.ErrNotVerifier
	}

	mod, err := s.mods.GetByChecksum(req.Checksum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModNotFound
		}
		return nil, apperrors.NewInternal(err)
	}

	switch mod.Verification {
	case models.VerificationCore:
		return nil, apperrors.NewBadRequest("Cannot verify Core mods.")
	case models.VerificationUnsafe:
		return nil, apperrors.NewBadRequest("This mod has already been verified as Unsafe.")
	case models.VerificationManual:
		return nil, apperrors.NewBadRequest("This mod has already been manually verified.")
	}

	if !req.IsGood && req.Reason == nil {
		return nil, apperrors.NewBadRequest("Unable to submit failed verification without a reason.")
	}
	if req.Reason != nil {
		if !strings.Contains(*req.Reason, " ") || len(*req.Reason) < minReasonLength {
			return nil, apperrors.NewBadRequest("Invalid or too short of a reason.")
		}
	}

	vote := &models.VerificationVote{
		Checksum:   req.Checksum,
		VerifierID: caller.UserID,
		IsGood:     &req.IsGood,
		Reason:     req.Reason,
	}
	if err := s.votes.CreateVote(vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateVote
		}
		return nil, apperrors.NewInternal(err)
	}

	return s.tally(mod)
}

// tally counts the recorded votes and applies a threshold transition. It is
// idempotent: a checksum already settled in a terminal state is never moved
// again, so re-running after the quorum was met cannot double-apply.
func (s *VerificationService) tally(mod *models.Mod) (*VoteResult, error) {
	good, bad, err := s.votes.CountByPolarity(mod.Checksum)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if mod.Verification.Terminal() {
		return &VoteResult{Message: "Successfully added mod verification.", State: mod.Verification}, nil
	}

	switch {
	case bad >= voteQuorum:
		if err := s.mods.SetVerification(mod.Checksum, models.VerificationUnsafe); err != nil {
			return nil, apperrors.NewInternal(err)
		}
		return &VoteResult{Message: "Successfully verified mod as Unsafe.", State: models.VerificationUnsafe}, nil
	case good >= voteQuorum:
		if err := s.mods.SetVerification(mod.Checksum, models.VerificationManual); err != nil {
			return nil, apperrors.NewInternal(err)
		}
		return &VoteResult{Message: "Successfully verified mod as Safe.", State: models.VerificationManual}, nil
	default:
		return &VoteResult{Message: "Successfully added mod verification.", State: mod.Verification}, nil
	}
}

// Yank lets the recorded owner of a mod's name pull a checksum without any
// consensus. It records a polarity-less verification entry under the same
// per-verifier uniqueness rule and moves the state to Yanked unconditionally.
func (s *VerificationService) Yank(caller *models.Token, checksum string, reason *string) (*VoteResult, error) {
	mod, err := s.mods.GetByChecksum(checksum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorized("")
		}
		return nil, apperrors.NewInternal(err)
	}

	ownership, err := s.owners.GetByName(mod.Name)
	if err != nil || ownership.OwnerID != caller.UserID {
		return nil, apperrors.NewUnauthorized("")
	}

	entry := &models.VerificationVote{
		Checksum:   checksum,
		VerifierID: caller.UserID,
		Reason:     reason,
	}
	if err := s.votes.CreateVote(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateVote
		}
		return nil, apperrors.NewInternal(err)
	}

	if err := s.mods.SetVerification(checksum, models.VerificationYanked); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &VoteResult{Message: "Successfully yanked mod.", State: models.VerificationYanked}, nil
}

// SetTrust is the administrative transition for the externally-assigned
// states. Auto comes from automated scanning, Core from curator designation;
// neither is reachable through the vote flow.
func (s *VerificationService) SetTrust(caller *models.Token, checksum string, state models.Verification) (*VoteResult, error) {
	if !caller.Roles.Has(models.RoleAdmin) {
		return nil, apperrors.NewUnauthorized("")
	}
	if state != models.VerificationAuto && state != models.VerificationCore {
		return nil, apperrors.NewBadRequest("Only the Auto and Core states can be assigned directly.")
	}

	if _, err := s.mods.GetByChecksum(checksum); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModNotFound
		}
		return nil, apperrors.NewInternal(err)
	}

	if err := s.mods.SetVerification(checksum, state); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	s.log.Infof("checksum %s administratively set to %s", checksum, state)
	return &VoteResult{Message: "Successfully updated mod trust state.", State: state}, nil
}
