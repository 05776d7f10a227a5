package handlers_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mod-registry-backend/internal/api/handlers"
	"mod-registry-backend/internal/auth"
	"mod-registry-backend/internal/database/models"
	"mod-registry-backend/internal/mocks"
	"mod-registry-backend/internal/service"
	"mod-registry-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ModHandlerTestSuite defines the test suite for ModHandler
type ModHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockMods   *mocks.MockModRepositoryInterface
	mockOwners *mocks.MockOwnershipRepositoryInterface
	handler    *handlers.ModHandler
	router     *gin.Engine
}

func (suite *ModHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMods = mocks.NewMockModRepositoryInterface(suite.ctrl)
	suite.mockOwners = mocks.NewMockOwnershipRepositoryInterface(suite.ctrl)

	store := storage.NewArtifactStore(suite.T().TempDir())
	suite.Require().NoError(store.EnsureTree())

	catalog := service.NewCatalogService(suite.mockMods, suite.mockOwners, store, validator.New())
	suite.handler = handlers.NewModHandler(catalog)

	suite.router = gin.New()
	suite.router.POST("/api/upload", func(c *gin.Context) {
		c.Set(auth.CallerKey, &models.Token{UserID: 7, Email: "uploader@example.com"})
	}, suite.handler.Upload)
}

func (suite *ModHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

type uploadPart struct {
	fieldName string
	filename  string
	content   string
}

func multipartBody(t *testing.T, parts []uploadPart) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, part := range parts {
		if part.filename == "" {
			assert.NoError(t, writer.WriteField(part.fieldName, part.content))
			continue
		}
		dst, err := writer.CreateFormFile(part.fieldName, part.filename)
		assert.NoError(t, err)
		_, err = dst.Write([]byte(part.content))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *ModHandlerTestSuite) TestUpload_JSONAndArchive_Success() {
	metadata := `{"name":"gear-assembler","version":"1.2.0","description":"Assembles gears"}`
	archive := "zip archive bytes"
	sum := sha256.Sum256([]byte(archive))

	suite.mockOwners.EXPECT().GetByName("gear-assembler").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMods.EXPECT().GetByName("gear-assembler").Return(nil, nil)
	suite.mockOwners.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMods.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOwners.EXPECT().AppendChecksum("gear-assembler", hex.EncodeToString(sum[:])).Return(nil)

	body, contentType := multipartBody(suite.T(), []uploadPart{
		{fieldName: "data.json", filename: "data.json", content: metadata},
		{fieldName: "mod.zip", filename: "mod.zip", content: archive},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ModResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), hex.EncodeToString(sum[:]), got.Checksum)
	assert.Equal(suite.T(), "gear-assembler", got.Name)
	assert.Equal(suite.T(), "1.2.0", got.Version)
}

func (suite *ModHandlerTestSuite) TestUpload_PlainFormFieldIsNotAnArchive() {
	// A filename-less field between the metadata and the archive must not
	// consume the archive slot.
	metadata := `{"name":"gear-assembler","version":"1.2.0","description":"Assembles gears"}`
	archive := "zip archive bytes"
	sum := sha256.Sum256([]byte(archive))

	suite.mockOwners.EXPECT().GetByName("gear-assembler").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMods.EXPECT().GetByName("gear-assembler").Return(nil, nil)
	suite.mockOwners.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMods.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOwners.EXPECT().AppendChecksum("gear-assembler", hex.EncodeToString(sum[:])).Return(nil)

	body, contentType := multipartBody(suite.T(), []uploadPart{
		{fieldName: "data.json", filename: "data.json", content: metadata},
		{fieldName: "channel", content: "stable"},
		{fieldName: "mod.zip", filename: "mod.zip", content: archive},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ModResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), hex.EncodeToString(sum[:]), got.Checksum)
}

func (suite *ModHandlerTestSuite) TestUpload_PlainFieldsOnly_MissingArchive() {
	metadata := `{"name":"gear-assembler","version":"1.2.0","description":"Assembles gears"}`

	body, contentType := multipartBody(suite.T(), []uploadPart{
		{fieldName: "data.json", filename: "data.json", content: metadata},
		{fieldName: "channel", content: "stable"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Missing `mod.zip` file", got.Error)
}

func (suite *ModHandlerTestSuite) TestUpload_SecondFilePartRejected() {
	metadata := `{"name":"gear-assembler","version":"1.2.0","description":"Assembles gears"}`

	body, contentType := multipartBody(suite.T(), []uploadPart{
		{fieldName: "data.json", filename: "data.json", content: metadata},
		{fieldName: "mod.zip", filename: "mod.zip", content: "first archive"},
		{fieldName: "extra.zip", filename: "extra.zip", content: "second archive"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Cannot send more than 1 file to upload", got.Error)
}

func (suite *ModHandlerTestSuite) TestUpload_NoToken_Unauthorized() {
	router := gin.New()
	router.POST("/api/upload", suite.handler.Upload)

	body, contentType := multipartBody(suite.T(), []uploadPart{
		{fieldName: "mod.zip", filename: "mod.zip", content: "archive"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestModHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ModHandlerTestSuite))
}
