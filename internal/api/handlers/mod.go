package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mod-registry-backend/internal/auth"
	"mod-registry-backend/internal/database/models"
	"mod-registry-backend/internal/logger"
	"mod-registry-backend/internal/service"
)

// ModHandler handles HTTP requests for mod upload, resolution and download
type ModHandler struct {
	catalog *service.CatalogService
	log     *logger.Logger
}

// NewModHandler creates a new mod handler
func NewModHandler(catalog *service.CatalogService) *ModHandler {
	return &ModHandler{
		catalog: catalog,
		log:     logger.New().WithField("handler", "mod"),
	}
}

// callerToken pulls the authenticated token row set by the auth middleware
func callerToken(c *gin.Context) *models.Token {
	value, exists := c.Get(auth.CallerKey)
	if !exists {
		return nil
	}
	row, ok := value.(*models.Token)
	if !ok {
		return nil
	}
	return row
}

// Upload handles POST /api/upload
// @Summary Upload a mod archive
// @Description Upload a zip archive together with its metadata json document
// @Tags mods
// @Accept multipart/form-data
// @Produce json
// @Param data.json formData file true "Mod metadata document"
// @Param mod.zip formData file true "Mod archive"
// @Success 200 {object} service.ModResponse "Successfully uploaded mod"
// @Failure 400 {object} ErrorResponse "Invalid metadata or archive"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/upload [post]
func (h *ModHandler) Upload(c *gin.Context) {
	caller := callerToken(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No Authorization Token provided"})
		return
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Expected a multipart upload"})
		return
	}

	var metadataJSON []byte
	var checksum, tmpPath string
	staged := false

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			if staged {
				h.catalog.DiscardStaged(tmpPath)
			}
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed multipart upload"})
			return
		}

		filename := part.FileName()
		switch {
		case strings.HasSuffix(filename, ".json"):
			metadataJSON, err = io.ReadAll(part)
			if err != nil {
				if staged {
					h.catalog.DiscardStaged(tmpPath)
				}
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read metadata part"})
				return
			}
		case filename != "":
			if staged {
				h.catalog.DiscardStaged(tmpPath)
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot send more than 1 file to upload"})
				return
			}
			checksum, tmpPath, err = h.catalog.StageArchive(part)
			if err != nil {
				respondError(c, err)
				return
			}
			staged = true
		default:
			// Parts without a filename are plain form fields, not files.
		}
	}

	if len(metadataJSON) == 0 {
		if staged {
			h.catalog.DiscardStaged(tmpPath)
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing `data.json` file"})
		return
	}
	if !staged {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing `mod.zip` file"})
		return
	}

	response, err := h.catalog.CompleteUpload(caller.UserID, metadataJSON, checksum, tmpPath)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetMod handles GET /public_api/get_mod
// @Summary Resolve a mod version
// @Description Resolve the best matching version of a mod by name, optional semver constraint and minimum trust state
// @Tags mods
// @Produce json
// @Param name query string true "Mod name"
// @Param version query string false "Semver constraint expression"
// @Param verification query string false "Minimum trust state" default(None)
// @Success 200 {object} service.ModResponse "Resolved mod"
// @Success 204 "No version satisfies the filters"
// @Failure 400 {object} ErrorResponse "Invalid constraint or trust state"
// @Router /public_api/get_mod [get]
func (h *ModHandler) GetMod(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing `name` query parameter"})
		return
	}

	var constraint *string
	if raw := c.Query("version"); raw != "" {
		constraint = &raw
	}

	minTrust := models.VerificationNone
	if raw := c.Query("verification"); raw != "" {
		minTrust = models.Verification(raw)
		if !minTrust.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid verification state provided"})
			return
		}
	}

	response, err := h.catalog.Resolve(name, constraint, minTrust)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Download handles GET /public_api/download/:checksum
// @Summary Download a stored blob
// @Description Stream the archive stored under a checksum and count the download
// @Tags mods
// @Produce application/zip
// @Param checksum path string true "Artifact checksum"
// @Success 200 {file} binary "Archive content"
// @Success 204 "No blob stored under the checksum"
// @Failure 400 {object} ErrorResponse "Malformed checksum"
// @Router /public_api/download/{checksum} [get]
func (h *ModHandler) Download(c *gin.Context) {
	checksum := c.Param("checksum")

	blob, err := h.catalog.Download(checksum)
	if err != nil {
		respondError(c, err)
		return
	}
	defer blob.Close()

	c.Header("Content-Disposition", "attachment; filename="+checksum+".zip")
	c.Header("Content-Type", "application/zip")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, blob); err != nil {
		h.log.WithError(err).Errorf("download stream for %s aborted", checksum)
	}
}
