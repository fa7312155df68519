//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/pkg/password"
	"course-checkout/internal/usecase/commands"
	commandsmock "course-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userRepo   *commandsmock.MockUserRepository
	jwtService *jwt.Service
	auth       commands.AuthCommands

	creds  user.Credentials
	hashed string
}

func (s *AuthTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour, time.Hour)
	s.auth = commands.NewAuthCommands(s.userRepo, s.jwtService)

	var err error
	s.creds, err = user.NewCredentials("client@example.com", "supersecret")
	s.Require().NoError(err)
	s.hashed, err = password.Hash("supersecret")
	s.Require().NoError(err)
}

func (s *AuthTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) account() *commands.AuthorizedUser {
	return &commands.AuthorizedUser{
		ID:       uuid.New(),
		Email:    "client@example.com",
		Role:     "client",
		Document: "12345678901",
		IsActive: true,
	}
}

func (s *AuthTestSuite) TestLoginIssuesTokenWithIdentityClaims() {
	account := s.account()

	s.userRepo.EXPECT().FindByEmail(gomock.Any(), "client@example.com").Return(account, s.hashed, nil)
	s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID).Return(nil)

	result, err := s.auth.Login(context.Background(), s.creds)

	s.Require().NoError(err)
	s.Equal(account, result.User)

	claims, err := s.jwtService.ValidateToken(result.AccessToken)
	s.Require().NoError(err)
	s.Equal(account.ID, claims.UserID)
	s.Equal("client", claims.Role)
	s.Equal("12345678901", claims.Document)
}

func (s *AuthTestSuite) TestLoginUnknownEmail() {
	s.userRepo.EXPECT().
		FindByEmail(gomock.Any(), "client@example.com").
		Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	_, err := s.auth.Login(context.Background(), s.creds)

	s.ErrorIs(err, commands.ErrUserNotFound)
}

func (s *AuthTestSuite) TestLoginInactiveAccount() {
	account := s.account()
	account.IsActive = false

	s.userRepo.EXPECT().FindByEmail(gomock.Any(), "client@example.com").Return(account, s.hashed, nil)

	_, err := s.auth.Login(context.Background(), s.creds)

	s.ErrorIs(err, commands.ErrUserInactive)
}

func (s *AuthTestSuite) TestLoginWrongPassword() {
	otherHash, err := password.Hash("different-password")
	s.Require().NoError(err)

	s.userRepo.EXPECT().FindByEmail(gomock.Any(), "client@example.com").Return(s.account(), otherHash, nil)

	_, err = s.auth.Login(context.Background(), s.creds)

	s.ErrorIs(err, commands.ErrInvalidCredentials)
}
