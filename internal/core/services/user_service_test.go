package services_test

import (
	"context"
	"testing"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/core/services"
	"github.com/finbooks/finbooks_app/internal/dto"
	"github.com/finbooks/finbooks_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndNormalizesEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Jane Doe",
		Email:    "  Jane.Doe@Example.COM ",
		Password: "correct horse battery",
	}
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "jane.doe@example.com" &&
			u.IsActive &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("jane.doe@example.com", user.Email)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmailConflicts() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, dto.RegisterUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPasswordUnauthorized() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@example.com").
		Return(&domain.User{UserID: "u1", Email: "jane@example.com", PasswordHash: hash, IsActive: true}, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@example.com", "a wrong password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	// Unknown email reports the same error as a bad password.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUserUnauthorized() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@example.com").
		Return(&domain.User{UserID: "u1", Email: "jane@example.com", PasswordHash: hash, IsActive: false}, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@example.com", "the real password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)
	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@example.com").
		Return(&domain.User{UserID: "u1", Email: "jane@example.com", PasswordHash: hash, IsActive: true}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jane@example.com", "the real password")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_NilsStoredToken() {
	ctx := context.Background()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, "u1", (*string)(nil), mock.Anything).
		Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, "u1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
