package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mod-registry-backend/internal/auth"
	"mod-registry-backend/internal/service"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teams *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// sessionClaims pulls the validated session set by the auth middleware
func sessionClaims(c *gin.Context) *auth.SessionClaims {
	value, exists := c.Get(auth.SessionKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// Create handles POST /teams
// @Summary Create a team
// @Description Create a team and install the requester as its owner
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body or duplicate name"
// @Failure 401 {object} ErrorResponse "Missing session"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teams.Create(claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// InviteResponse carries the join URL for a team invite code
type InviteResponse struct {
	Invite string `json:"invite"`
}

// Invite handles POST /teams/:id/invite
// @Summary Issue a team invite
// @Description Return the team's invite URL, generating a code on first use
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} InviteResponse "Invite URL"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 401 {object} ErrorResponse "Requester is not a team member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/invite [post]
func (h *TeamHandler) Invite(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	invite, err := h.teams.Invite(teamID, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, InviteResponse{Invite: invite})
}

// Join handles POST /teams/join/:code
// @Summary Join a team
// @Description Join the team behind an invite code as a plain member
// @Tags teams
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} service.TeamResponse "Joined team"
// @Failure 400 {object} ErrorResponse "Unknown invite code or already a member"
// @Failure 401 {object} ErrorResponse "Missing session"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/join/{code} [post]
func (h *TeamHandler) Join(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	team, err := h.teams.Join(c.Param("code"), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// TransferRequest names the mod to move under team ownership
type TransferRequest struct {
	Name string `json:"name" binding:"required"`
}

// Transfer handles POST /teams/:id/transfer
// @Summary Transfer a mod to a team
// @Description Move ownership of a mod from the requester to a team they own
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body TransferRequest true "Mod to transfer"
// @Success 200 "Ownership transferred"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Requester does not own both sides"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/transfer [post]
func (h *TeamHandler) Transfer(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.teams.TransferMod(req.Name, teamID, claims.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
