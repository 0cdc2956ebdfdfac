package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hospitality/config"
	"hospitality/infras/jwt"
	jwtMocks "hospitality/infras/jwt/mocks"
	"hospitality/infras/otel/mocks"
	userMocks "hospitality/internal/domains/user/mocks"
	"hospitality/internal/domains/user/model"
	"hospitality/internal/domains/user/model/dto"
	"hospitality/internal/domains/user/service"
	"hospitality/shared/constant"
	"hospitality/shared/failure"
	"hospitality/shared/password"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockJWT, mockOtel)

	tests := []struct {
		name      string
		req       dto.RegisterUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterUserRequest{
				FullName:        "Asha Rao",
				Email:           "asha@example.com",
				Phone:           "9876543210",
				Password:        "supersecret",
				ConfirmPassword: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr: false,
		},
		{
			name: "password mismatch",
			req: dto.RegisterUserRequest{
				FullName:        "Asha Rao",
				Email:           "asha@example.com",
				Phone:           "9876543210",
				Password:        "supersecret",
				ConfirmPassword: "different",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			req: dto.RegisterUserRequest{
				FullName:        "Asha Rao",
				Email:           "asha@example.com",
				Phone:           "9876543210",
				Password:        "supersecret",
				ConfirmPassword: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.RegisterUserRequest{
				FullName:        "Asha Rao",
				Email:           "asha@example.com",
				Phone:           "9876543210",
				Password:        "supersecret",
				ConfirmPassword: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Register(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockJWT, mockOtel)

	hashed, err := password.Hash("supersecret")
	assert.NoError(t, err)

	storedUser := model.User{
		ID:       1,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: hashed,
	}

	tests := []struct {
		name      string
		req       dto.LoginUserRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req: dto.LoginUserRequest{
				Email:    "asha@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(int64(1), "asha@example.com").
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						TokenType:    "Bearer",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginUserRequest{
				Email:    "nobody@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req: dto.LoginUserRequest{
				Email:    "asha@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req: dto.LoginUserRequest{
				Email:    "asha@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginUserRequest{
				Email:    "asha@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			res, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Login successful", res.Message)
			assert.Equal(t, "Asha Rao", res.Name)
			assert.Equal(t, "asha@example.com", res.Email)
			assert.NotNil(t, res.Tokens)
		})
	}
}

func TestUserService_AdminLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "adminsecret"

	svc := service.New(mockRepo, cfg, mockJWT, mockOtel)

	tests := []struct {
		name      string
		req       dto.AdminLoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful admin login",
			req: dto.AdminLoginRequest{
				Email:    "admin@example.com",
				Password: "adminsecret",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(int64(0), "admin@example.com").
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						TokenType:    "Bearer",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong email",
			req: dto.AdminLoginRequest{
				Email:    "other@example.com",
				Password: "adminsecret",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req: dto.AdminLoginRequest{
				Email:    "admin@example.com",
				Password: "guess",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "token generation error",
			req: dto.AdminLoginRequest{
				Email:    "admin@example.com",
				Password: "adminsecret",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			res, err := svc.AdminLogin(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Login successful", res.Message)
			assert.NotNil(t, res.Tokens)
		})
	}
}
