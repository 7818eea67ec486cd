//go:build integration
// +build integration

package repository

import (
	"testing"

	"tasting-contest-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests invitee lookups
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factory       *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestLookups() {
	user := suite.factory.WithHandle("sommelier")
	user.Email = "Sommelier@Example.com"
	suite.Require().NoError(suite.repo.Create(user))

	byID, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("sommelier", byID.Handle)

	for _, handle := range []string{"sommelier", "@sommelier"} {
		found, err := suite.repo.GetByHandle(handle)
		suite.NoError(err, handle)
		suite.Equal(user.ID, found.ID)
	}

	found, err := suite.repo.GetByEmail("sommelier@EXAMPLE.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

func (suite *UserRepositoryTestSuite) TestNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByHandle("@nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestHandleIsUnique() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithHandle("twin")))
	suite.Error(suite.repo.Create(suite.factory.WithHandle("twin")))
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
