package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mod-registry-backend/internal/database/models"
	"mod-registry-backend/internal/service"
)

// SearchHandler handles HTTP requests for catalog search
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /public_api/search
// @Summary Search the catalog
// @Description Fuzzy-search mods by name, description and keywords with cursor pagination
// @Tags search
// @Produce json
// @Param query query string false "Search query, at most 64 characters"
// @Param sort_by query string false "Sort key: name, downloads or uploaded" default(name)
// @Param reverse query bool false "Reverse the sort direction"
// @Param verification query string false "Minimum trust state" default(None)
// @Param names_only query bool false "Match names only"
// @Param keywords_only query bool false "Match keywords only"
// @Param per_page query int false "Page size" default(30)
// @Param before query string false "Checksum cursor, results strictly before it"
// @Param after query string false "Checksum cursor, results strictly after it"
// @Success 200 {array} service.SearchResult "Matching mods"
// @Success 204 "No mod matched"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /public_api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	req := &service.SearchRequest{
		Query:        c.Query("query"),
		SortBy:       models.SortBy(c.DefaultQuery("sort_by", string(models.SortByName))),
		Reverse:      queryBool(c, "reverse"),
		MinTrust:     models.VerificationNone,
		NamesOnly:    queryBool(c, "names_only"),
		KeywordsOnly: queryBool(c, "keywords_only"),
	}

	if raw := c.Query("verification"); raw != "" {
		trust := models.Verification(raw)
		if !trust.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid verification state provided"})
			return
		}
		req.MinTrust = trust
	}

	if raw := c.Query("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid `per_page` value"})
			return
		}
		req.PerPage = perPage
	}

	if raw := c.Query("before"); raw != "" {
		req.Before = &raw
	}
	if raw := c.Query("after"); raw != "" {
		req.After = &raw
	}

	results, err := h.search.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func queryBool(c *gin.Context, key string) bool {
	value, err := strconv.ParseBool(c.DefaultQuery(key, "false"))
	if err != nil {
		return false
	}
	return value
}
