package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mod-registry-backend/internal/database/models"
	"mod-registry-backend/internal/service"
)

// VerificationHandler handles HTTP requests for verification voting,
// yanking and administrative trust overrides
type VerificationHandler struct {
	verification *service.VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verification *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verification: verification}
}

// Verify handles POST /api/verify
// @Summary Submit a verification vote
// @Description Record one verifier judgement on a checksum and run the consensus tally
// @Tags verification
// @Accept json
// @Produce json
// @Param vote body service.VoteRequest true "Verification vote"
// @Success 200 {object} service.VoteResult "Vote recorded"
// @Failure 400 {object} ErrorResponse "Invalid vote"
// @Failure 401 {object} ErrorResponse "Caller is not a verifier"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/verify [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	caller := callerToken(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No Authorization Token provided"})
		return
	}

	var req service.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.verification.Vote(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// YankRequest names the checksum to yank and the optional reason
type YankRequest struct {
	Checksum string  `json:"checksum" binding:"required"`
	Reason   *string `json:"reason,omitempty"`
}

// Yank handles POST /api/yank
// @Summary Yank an uploaded mod
// @Description Withdraw an artifact from resolution; only its owner may do this
// @Tags verification
// @Accept json
// @Produce json
// @Param request body YankRequest true "Yank request"
// @Success 200 {object} service.VoteResult "Mod yanked"
// @Failure 400 {object} ErrorResponse "Unknown checksum"
// @Failure 401 {object} ErrorResponse "Caller does not own the mod"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/yank [post]
func (h *VerificationHandler) Yank(c *gin.Context) {
	caller := callerToken(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No Authorization Token provided"})
		return
	}

	var req YankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.verification.Yank(caller, req.Checksum, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// TrustRequest names the checksum and the state an administrator assigns
type TrustRequest struct {
	Checksum string              `json:"checksum" binding:"required"`
	State    models.Verification `json:"state" binding:"required"`
}

// SetTrust handles POST /api/admin/trust
// @Summary Override the trust state of a mod
// @Description Set a checksum to Auto or Core directly, bypassing the vote tally
// @Tags verification
// @Accept json
// @Produce json
// @Param request body TrustRequest true "Trust override"
// @Success 200 {object} service.VoteResult "State applied"
// @Failure 400 {object} ErrorResponse "Invalid target state"
// @Failure 401 {object} ErrorResponse "Caller is not an administrator"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/admin/trust [post]
func (h *VerificationHandler) SetTrust(c *gin.Context) {
	caller := callerToken(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No Authorization Token provided"})
		return
	}

	var req TrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.verification.SetTrust(caller, req.Checksum, req.State)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
