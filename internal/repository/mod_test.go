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

// ModRepositoryTestSuite tests the ModRepository
type ModRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ModRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ModRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewModRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ModRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ModRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ModRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new mod
func (suite *ModRepositoryTestSuite) TestCreate() {
	mod := suite.factories.Mod.Create()

	err := suite.repo.Create(mod)

	suite.NoError(err)
	suite.NotZero(mod.Uploaded)
}

// TestCreateDuplicateChecksum tests that re-inserting a checksum is rejected
func (suite *ModRepositoryTestSuite) TestCreateDuplicateChecksum() {
	mod := suite.factories.Mod.Create()
	err := suite.repo.Create(mod)
	suite.NoError(err)

	duplicate := suite.factories.Mod.WithVersion("other-mod", "2.0.0")
	duplicate.Checksum = mod.Checksum

	err = suite.repo.Create(duplicate)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByChecksum tests retrieving a mod by checksum
func (suite *ModRepositoryTestSuite) TestGetByChecksum() {
	mod := suite.factories.Mod.Create()
	err := suite.repo.Create(mod)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByChecksum(mod.Checksum)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(mod.Checksum, retrieved.Checksum)
	suite.Equal(mod.Name, retrieved.Name)
	suite.Equal(mod.Version, retrieved.Version)
}

// TestGetByChecksumNotFound tests retrieving a non-existent checksum
func (suite *ModRepositoryTestSuite) TestGetByChecksumNotFound() {
	mod, err := suite.repo.GetByChecksum(testutils.RandomChecksum())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(mod)
}

// TestGetByName tests retrieving every version under a name
func (suite *ModRepositoryTestSuite) TestGetByName() {
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithVersion("multi-mod", "1.0.0")))
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithVersion("multi-mod", "1.1.0")))
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithVersion("unrelated-mod", "1.0.0")))

	mods, err := suite.repo.GetByName("multi-mod")

	suite.NoError(err)
	suite.Len(mods, 2)
	for _, mod := range mods {
		suite.Equal("multi-mod", mod.Name)
	}
}

// TestGetByNameVersion tests retrieving the single row for a (name, version) pair
func (suite *ModRepositoryTestSuite) TestGetByNameVersion() {
	mod := suite.factories.Mod.WithVersion("pinned-mod", "1.2.3")
	suite.NoError(suite.repo.Create(mod))

	retrieved, err := suite.repo.GetByNameVersion("pinned-mod", "1.2.3")

	suite.NoError(err)
	suite.Equal(mod.Checksum, retrieved.Checksum)

	_, err = suite.repo.GetByNameVersion("pinned-mod", "9.9.9")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestListOrderedByName tests the default catalog ordering
func (suite *ModRepositoryTestSuite) TestListOrderedByName() {
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithName("banana")))
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithName("apple")))
	suite.NoError(suite.repo.Create(suite.factories.Mod.WithName("cherry")))

	mods, err := suite.repo.ListOrdered(models.SortByName, true)

	suite.NoError(err)
	suite.Len(mods, 3)
	suite.Equal("apple", mods[0].Name)
	suite.Equal("banana", mods[1].Name)
	suite.Equal("cherry", mods[2].Name)

	// Default (non-reversed) order is descending
	mods, err = suite.repo.ListOrdered(models.SortByName, false)
	suite.NoError(err)
	suite.Equal("cherry", mods[0].Name)
}

// TestListOrderedByDownloads tests ordering by the download counter
func (suite *ModRepositoryTestSuite) TestListOrderedByDownloads() {
	popular := suite.factories.Mod.WithName("popular")
	popular.Downloads = 50
	obscure := suite.factories.Mod.WithName("obscure")
	obscure.Downloads = 2
	suite.NoError(suite.repo.Create(popular))
	suite.NoError(suite.repo.Create(obscure))

	mods, err := suite.repo.ListOrdered(models.SortByDownloads, false)

	suite.NoError(err)
	suite.Equal("popular", mods[0].Name)
	suite.Equal("obscure", mods[1].Name)
}

// TestListOrderedRejectsUnknownKey tests that arbitrary sort keys never reach SQL
func (suite *ModRepositoryTestSuite) TestListOrderedRejectsUnknownKey() {
	_, err := suite.repo.ListOrdered(models.SortBy("uploaded; DROP TABLE mods"), false)

	suite.Error(err)
}

// TestIncrementDownloads tests bumping the download counter
func (suite *ModRepositoryTestSuite) TestIncrementDownloads() {
	mod := suite.factories.Mod.Create()
	suite.NoError(suite.repo.Create(mod))

	suite.NoError(suite.repo.IncrementDownloads(mod.Checksum))
	suite.NoError(suite.repo.IncrementDownloads(mod.Checksum))

	retrieved, err := suite.repo.GetByChecksum(mod.Checksum)
	suite.NoError(err)
	suite.Equal(int64(2), retrieved.Downloads)
}

// TestSetVerification tests updating the trust state
func (suite *ModRepositoryTestSuite) TestSetVerification() {
	mod := suite.factories.Mod.Create()
	suite.NoError(suite.repo.Create(mod))

	err := suite.repo.SetVerification(mod.Checksum, models.VerificationManual)

	suite.NoError(err)
	retrieved, err := suite.repo.GetByChecksum(mod.Checksum)
	suite.NoError(err)
	suite.Equal(models.VerificationManual, retrieved.Verification)
}

// TestAllChecksums tests listing every stored checksum
func (suite *ModRepositoryTestSuite) TestAllChecksums() {
	mod1 := suite.factories.Mod.WithName("mod-one")
	mod2 := suite.factories.Mod.WithName("mod-two")
	suite.NoError(suite.repo.Create(mod1))
	suite.NoError(suite.repo.Create(mod2))

	checksums, err := suite.repo.AllChecksums()

	suite.NoError(err)
	suite.Len(checksums, 2)
	suite.Contains(checksums, mod1.Checksum)
	suite.Contains(checksums, mod2.Checksum)
}

// Run the test suite
func TestModRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ModRepositoryTestSuite))
}
