package dto

import (
	"github.com/savioruz/reserva/internal/domains/user/repository"
	"github.com/savioruz/reserva/pkg/constant"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Level string `json:"level"`
}

func (u UserResponse) FromModel(user repository.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.FullName,
		Phone: user.Phone.String,
		Level: user.Level,
	}
}

type UserLoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserProfileResponse struct {
	UserResponse
	LastLogin string `json:"last_login,omitempty"`
}

func (u UserProfileResponse) FromModel(user repository.User) UserProfileResponse {
	res := UserProfileResponse{UserResponse: UserResponse{}.FromModel(user)}

	if user.LastLogin.Valid {
		res.LastLogin = user.LastLogin.Time.Format(constant.FullDateFormat)
	}

	return res
}
