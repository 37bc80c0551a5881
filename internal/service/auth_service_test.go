package service_test

import (
	"testing"
	"time"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite

	cfg         *config.Config
	authService service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.cfg = &config.Config{}
	s.cfg.Auth.Enabled = true
	s.cfg.JWT.SecretKey = "test-secret"
	s.cfg.JWT.Issuer = "titan-quest-test"
	s.cfg.JWT.TTL = 15 * time.Minute
	s.authService = service.NewAuthService(s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestIssueToken() {
	playerID := uuid.New()

	signed, err := s.authService.IssueToken(playerID, "Hero")
	s.Require().NoError(err)
	s.Require().NotEmpty(signed)

	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("titan-quest-test"))
	s.Require().NoError(err)
	s.True(token.Valid)
	s.Equal(playerID.String(), claims.Subject)
	s.Equal("Hero", claims.PlayerName)
	s.WithinDuration(time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func (s *AuthServiceTestSuite) TestIssueToken_AuthDisabled() {
	s.cfg.Auth.Enabled = false

	signed, err := s.authService.IssueToken(uuid.New(), "Hero")
	s.NoError(err)
	s.Empty(signed)
}

func (s *AuthServiceTestSuite) TestIssueToken_MissingSecret() {
	s.cfg.JWT.SecretKey = ""

	_, err := s.authService.IssueToken(uuid.New(), "Hero")
	s.ErrorIs(err, service.ErrMissingSigningKey)
}
