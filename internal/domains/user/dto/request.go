package dto

type UserRegisterRequest struct {
	Email    string `example:"guest@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `example:"0901234567" json:"phone" validate:"omitempty,numeric,min=9,max=15"`
}

type UserLoginRequest struct {
	Email    string `example:"guest@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
