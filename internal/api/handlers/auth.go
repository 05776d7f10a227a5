package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mod-registry-backend/internal/auth"
	"mod-registry-backend/internal/service"
)

const stateCookie = "oauth_state"

// AuthHandler handles the OAuth login flow and registry token issuance
type AuthHandler struct {
	provider *auth.ProviderClient
	sessions *auth.AuthService
	tokens   *service.TokenService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(provider *auth.ProviderClient, sessions *auth.AuthService, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login handles GET /login
// @Summary Start the OAuth login flow
// @Description Redirect the browser to the identity provider's consent page
// @Tags auth
// @Success 302 "Redirect to the provider"
// @Router /login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// SessionResponse carries the minted session token
type SessionResponse struct {
	Session string `json:"session"`
}

// Callback handles GET /callback
// @Summary Complete the OAuth login flow
// @Description Exchange the provider code for an identity and mint a session token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-forgery state"
// @Success 200 {object} SessionResponse "Session minted"
// @Failure 400 {object} ErrorResponse "Missing code or state mismatch"
// @Failure 408 {object} ErrorResponse "Provider timed out"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing `code` query parameter"})
		return
	}

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "State mismatch"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	session, err := h.sessions.MintSession(profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("session", session, 0, "/", "", false, true)
	c.JSON(http.StatusOK, SessionResponse{Session: session})
}

// TokenResponse carries the caller's registry bearer token
type TokenResponse struct {
	Token string `json:"token"`
}

// Token handles GET /token
// @Summary Fetch the registry bearer token
// @Description Return the caller's registry token, deriving one on first request
// @Tags auth
// @Produce json
// @Success 200 {object} TokenResponse "Registry token"
// @Failure 401 {object} ErrorResponse "Missing session or banned user"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /token [get]
func (h *AuthHandler) Token(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	token, err := h.tokens.IssueOrFetch(claims.UserID, claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// MeResponse describes the authenticated session identity
type MeResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Me handles GET /me
// @Summary Describe the current session
// @Description Return the identity bound to the session token
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse "Session identity"
// @Failure 401 {object} ErrorResponse "Missing session"
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session provided"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	})
}
