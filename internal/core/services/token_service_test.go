package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/core/services"
	"github.com/shopward/shopward_backend/internal/platform/config"
	"github.com/shopward/shopward_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		AccessTokenSecret:  "access-secret-for-tests",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenSecret: "refresh-secret-for-tests",
		RefreshTokenExpiry: 24 * time.Hour,
		TokenIssuer:        "shopward-tests",
	}
	suite.service = services.NewTokenService(suite.cfg)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_CarriesUsernameAndRole() {
	ctx := context.Background()
	user := &domain.User{Username: "alice", Role: domain.RoleAdmin}

	token, expiry, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := utils.ParseAccessToken(token, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal("alice", claims.Username)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
}

func (suite *TokenServiceTestSuite) TestRefreshTokenRoundTrip() {
	ctx := context.Background()
	user := &domain.User{Username: "bob", Role: domain.RoleUser}

	token, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)

	username, err := suite.service.ParseRefreshToken(ctx, token)
	suite.Require().NoError(err)
	suite.Equal("bob", username)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_DistinctPerIssue() {
	ctx := context.Background()
	user := &domain.User{Username: "bob", Role: domain.RoleUser}

	// Issued back to back within the same second; the jti must keep the
	// stored tokens distinguishable.
	first, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)
	second, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
}

func (suite *TokenServiceTestSuite) TestParseRefreshToken_RejectsAccessToken() {
	ctx := context.Background()
	user := &domain.User{Username: "bob", Role: domain.RoleUser}

	// Signed with the access secret, so the refresh parser must refuse it.
	accessToken, _, err := suite.service.GenerateAccessToken(ctx, user)
	suite.Require().NoError(err)

	_, err = suite.service.ParseRefreshToken(ctx, accessToken)
	suite.Require().Error(err)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
