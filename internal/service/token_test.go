package service_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/mocks"
	"mod-registry-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TokenServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockTokens *mocks.MockTokenRepositoryInterface
	svc        *service.TokenService
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTokens = mocks.NewMockTokenRepositoryInterface(suite.ctrl)

	svc, err := service.NewTokenService(suite.mockTokens, bytes.Repeat([]byte{0x42}, 32), bytes.Repeat([]byte{0x17}, 16))
	suite.Require().NoError(err)
	suite.svc = svc
}

func (suite *TokenServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestNewTokenService_KeySizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockTokenRepositoryInterface(ctrl)

	_, err := service.NewTokenService(repo, bytes.Repeat([]byte{1}, 16), bytes.Repeat([]byte{1}, 16))
	assert.Error(t, err, "short key must be rejected")

	_, err = service.NewTokenService(repo, bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{1}, 8))
	assert.Error(t, err, "short iv must be rejected")

	_, err = service.NewTokenService(repo, bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{1}, 16))
	assert.NoError(t, err)
}

func (suite *TokenServiceTestSuite) TestIssueOrFetch_RejectsNonPositiveID() {
	_, err := suite.svc.IssueOrFetch(0, "user@test.com")
	assert.True(suite.T(), apperrors.IsBadRequest(err))

	_, err = suite.svc.IssueOrFetch(-3, "user@test.com")
	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *TokenServiceTestSuite) TestIssueOrFetch_ReturnsExistingVerbatim() {
	suite.mockTokens.EXPECT().GetByUserID(int64(7)).Return(&models.Token{UserID: 7, Token: "existing-token"}, nil)

	token, err := suite.svc.IssueOrFetch(7, "user@test.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "existing-token", token)
}

func (suite *TokenServiceTestSuite) TestIssueOrFetch_BannedUserRefused() {
	suite.mockTokens.EXPECT().GetByUserID(int64(7)).Return(&models.Token{UserID: 7, Token: "t", IsBanned: true}, nil)

	_, err := suite.svc.IssueOrFetch(7, "user@test.com")

	assert.ErrorIs(suite.T(), err, apperrors.ErrBannedUser)
}

func (suite *TokenServiceTestSuite) TestIssueOrFetch_FirstIssuanceDerivesAndStores() {
	suite.mockTokens.EXPECT().GetByUserID(int64(7)).Return(nil, gorm.ErrRecordNotFound)

	var stored *models.Token
	suite.mockTokens.EXPECT().Create(gomock.Any()).DoAndReturn(func(row *models.Token) error {
		stored = row
		return nil
	})

	token, err := suite.svc.IssueOrFetch(7, "user@test.com")

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), token, stored.Token)
	assert.Equal(suite.T(), int64(7), stored.UserID)
	assert.Equal(suite.T(), "user@test.com", stored.Email)

	// The token is base64 over whole AES blocks
	raw, decodeErr := base64.StdEncoding.DecodeString(token)
	assert.NoError(suite.T(), decodeErr)
	assert.Zero(suite.T(), len(raw)%16)
}

func (suite *TokenServiceTestSuite) TestIssueOrFetch_RaceLoserReturnsWinnersToken() {
	suite.mockTokens.EXPECT().GetByUserID(int64(7)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTokens.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)
	suite.mockTokens.EXPECT().GetByUserID(int64(7)).Return(&models.Token{UserID: 7, Token: "winner-token"}, nil)

	token, err := suite.svc.IssueOrFetch(7, "user@test.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "winner-token", token)
}

func (suite *TokenServiceTestSuite) TestLookup_UnknownToken() {
	suite.mockTokens.EXPECT().GetByToken("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Lookup("ghost")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTokenNotBound)
}

func (suite *TokenServiceTestSuite) TestLookup_BannedToken() {
	suite.mockTokens.EXPECT().GetByToken("banned").Return(&models.Token{UserID: 7, Token: "banned", IsBanned: true}, nil)

	_, err := suite.svc.Lookup("banned")

	assert.ErrorIs(suite.T(), err, apperrors.ErrBannedUser)
}

func (suite *TokenServiceTestSuite) TestLookup_Success() {
	suite.mockTokens.EXPECT().GetByToken("valid").Return(&models.Token{UserID: 7, Token: "valid", Roles: models.RoleVerifier}, nil)

	row, err := suite.svc.Lookup("valid")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), row.UserID)
	assert.True(suite.T(), row.Roles.Has(models.RoleVerifier))
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
