package response

import (
	"time"

	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        LoggedInUser `json:"user"`
}

type LoggedInUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func NewLoginResponse(result *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: result.AccessToken,
		User: LoggedInUser{
			ID:        result.User.ID,
			Email:     result.User.Email,
			Role:      result.User.Role,
			LastLogin: result.User.LastLogin,
		},
	}
}
