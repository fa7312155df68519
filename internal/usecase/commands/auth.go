package commands

import (
	"context"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/pkg/password"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrInvalidCredentials      = errs.New("invalid email or password")
	ErrUserInactive            = errs.New("user account is inactive")
	ErrTokenGeneration         = errs.New("token generation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type LoginResult struct {
	AccessToken string
	User        *AuthorizedUser
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	account, hashed, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(hashed, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.ID, role, account.Document)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &LoginResult{AccessToken: token, User: account}, nil
}
