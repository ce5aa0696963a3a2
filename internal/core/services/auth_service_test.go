package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/finbooks_app/internal/apperrors"
	"github.com/finbooks/finbooks_app/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/core/services"
	"github.com/finbooks/finbooks_app/internal/platform/config"
	"github.com/finbooks/finbooks_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "finbooks-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewTokenService(cfg, userService)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_ReturnsSignedJWT() {
	ctx := context.Background()
	token, expiry, err := suite.service.GenerateAccessToken(ctx, &domain.User{UserID: "u1"})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiry.After(time.Now()))
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_OpaqueHexToken() {
	ctx := context.Background()
	token, expiry, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: "u1"})

	suite.Require().NoError(err)
	suite.Len(token, 64)
	suite.True(expiry.After(time.Now().Add(6 * 24 * time.Hour)))
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_AcceptsStoredToken() {
	ctx := context.Background()
	raw := "some-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiry := time.Now().Add(time.Hour)
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1", RefreshTokenHash: &hash, RefreshTokenExpiry: &expiry}, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u1", raw)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_WrongTokenRejected() {
	ctx := context.Background()
	hash := utils.HashRefreshToken("the stored token")
	expiry := time.Now().Add(time.Hour)
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1", RefreshTokenHash: &hash, RefreshTokenExpiry: &expiry}, nil).Once()

	_, err := suite.service.ValidateAndParseRefreshToken(ctx, "u1", "a different token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_ExpiredTokenRejected() {
	ctx := context.Background()
	raw := "some-refresh-token"
	hash := utils.HashRefreshToken(raw)
	expiry := time.Now().Add(-time.Minute)
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1", RefreshTokenHash: &hash, RefreshTokenExpiry: &expiry}, nil).Once()

	_, err := suite.service.ValidateAndParseRefreshToken(ctx, "u1", raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_NoStoredTokenRejected() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.ValidateAndParseRefreshToken(ctx, "u1", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_UnknownUserRejected() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValidateAndParseRefreshToken(ctx, "ghost", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
