//go:build integration
// +build integration

package repository

import (
	"testing"

	"mod-registry-backend/internal/database/models"
	"mod-registry-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TokenRepositoryTestSuite tests the TokenRepository
type TokenRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TokenRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TokenRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTokenRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TokenRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TokenRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TokenRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests minting a token row
func (suite *TokenRepositoryTestSuite) TestCreate() {
	token := suite.factories.Token.Create(7)

	err := suite.repo.Create(token)

	suite.NoError(err)
	suite.NotZero(token.CreatedAt)
}

// TestCreateDuplicateUser tests that a principal can hold only one token
func (suite *TokenRepositoryTestSuite) TestCreateDuplicateUser() {
	suite.NoError(suite.repo.Create(suite.factories.Token.Create(7)))

	err := suite.repo.Create(suite.factories.Token.Create(7))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByUserID tests retrieving a token by principal
func (suite *TokenRepositoryTestSuite) TestGetByUserID() {
	token := suite.factories.Token.WithRoles(7, models.RoleVerifier)
	suite.NoError(suite.repo.Create(token))

	retrieved, err := suite.repo.GetByUserID(7)

	suite.NoError(err)
	suite.Equal(token.Token, retrieved.Token)
	suite.True(retrieved.Roles.Has(models.RoleVerifier))
	suite.False(retrieved.IsBanned)
}

// TestGetByUserIDNotFound tests retrieving a token for an unknown principal
func (suite *TokenRepositoryTestSuite) TestGetByUserIDNotFound() {
	token, err := suite.repo.GetByUserID(999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(token)
}

// TestGetByToken tests resolving a bearer credential to its row
func (suite *TokenRepositoryTestSuite) TestGetByToken() {
	token := suite.factories.Token.Create(7)
	suite.NoError(suite.repo.Create(token))

	retrieved, err := suite.repo.GetByToken(token.Token)

	suite.NoError(err)
	suite.Equal(int64(7), retrieved.UserID)
}

// TestSetBanned tests flipping the ban flag
func (suite *TokenRepositoryTestSuite) TestSetBanned() {
	token := suite.factories.Token.Create(7)
	suite.NoError(suite.repo.Create(token))

	suite.NoError(suite.repo.SetBanned(7, true))

	retrieved, err := suite.repo.GetByUserID(7)
	suite.NoError(err)
	suite.True(retrieved.IsBanned)

	suite.NoError(suite.repo.SetBanned(7, false))
	retrieved, err = suite.repo.GetByUserID(7)
	suite.NoError(err)
	suite.False(retrieved.IsBanned)
}

// Run the test suite
func TestTokenRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TokenRepositoryTestSuite))
}
