//go:build integration
// +build integration

package repository

import (
	"testing"

	"mod-registry-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OwnershipRepositoryTestSuite tests the OwnershipRepository
type OwnershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OwnershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OwnershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOwnershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OwnershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OwnershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests claiming a fresh mod name
func (suite *OwnershipRepositoryTestSuite) TestCreate() {
	ownership := suite.factories.Ownership.Create("fresh-mod", 7)

	err := suite.repo.Create(ownership)

	suite.NoError(err)
}

// TestCreateDuplicateName tests that the second claim on a name loses
func (suite *OwnershipRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.Ownership.Create("contested-mod", 7)))

	err := suite.repo.Create(suite.factories.Ownership.Create("contested-mod", 8))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByName tests retrieving an ownership record
func (suite *OwnershipRepositoryTestSuite) TestGetByName() {
	suite.NoError(suite.repo.Create(suite.factories.Ownership.Create("owned-mod", 7)))

	ownership, err := suite.repo.GetByName("owned-mod")

	suite.NoError(err)
	suite.Equal("owned-mod", ownership.ModName)
	suite.Equal(int64(7), ownership.OwnerID)
	suite.False(ownership.IsTeam)
}

// TestGetByNameNotFound tests retrieving a never-claimed name
func (suite *OwnershipRepositoryTestSuite) TestGetByNameNotFound() {
	ownership, err := suite.repo.GetByName("nonexistent-mod")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ownership)
}

// TestAppendChecksum tests accumulating published checksums under a name
func (suite *OwnershipRepositoryTestSuite) TestAppendChecksum() {
	suite.NoError(suite.repo.Create(suite.factories.Ownership.Create("versioned-mod", 7)))
	first := testutils.RandomChecksum()
	second := testutils.RandomChecksum()

	suite.NoError(suite.repo.AppendChecksum("versioned-mod", first))
	suite.NoError(suite.repo.AppendChecksum("versioned-mod", second))

	ownership, err := suite.repo.GetByName("versioned-mod")
	suite.NoError(err)
	suite.Equal([]string{first, second}, []string(ownership.Checksums))
}

// TestTransfer tests reassigning a name to a team
func (suite *OwnershipRepositoryTestSuite) TestTransfer() {
	suite.NoError(suite.repo.Create(suite.factories.Ownership.Create("moving-mod", 7)))

	err := suite.repo.Transfer("moving-mod", 42)

	suite.NoError(err)
	ownership, err := suite.repo.GetByName("moving-mod")
	suite.NoError(err)
	suite.Equal(int64(42), ownership.OwnerID)
	suite.True(ownership.IsTeam)
}

// TestTransferNotFound tests transferring a never-claimed name
func (suite *OwnershipRepositoryTestSuite) TestTransferNotFound() {
	err := suite.repo.Transfer("nonexistent-mod", 42)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestOwnershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipRepositoryTestSuite))
}
