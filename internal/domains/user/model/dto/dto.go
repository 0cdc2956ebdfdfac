package dto

import (
	"hospitality/infras/jwt"
	"hospitality/internal/domains/user/model"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

type RegisterUserRequest struct {
	FullName        string `json:"fullName"        validate:"required,max=150"`
	Email           string `json:"email"           validate:"required,email,max=150"`
	Phone           string `json:"phone"           validate:"required,max=20"`
	Password        string `json:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (r *RegisterUserRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type LoginUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	Message string         `json:"message"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Tokens  *jwt.TokenPair `json:"tokens"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Message string         `json:"message"`
	Tokens  *jwt.TokenPair `json:"tokens"`
}
