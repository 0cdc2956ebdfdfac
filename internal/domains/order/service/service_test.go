package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hospitality/config"
	mailMocks "hospitality/infras/mail/mocks"
	"hospitality/infras/otel/mocks"
	storageMocks "hospitality/infras/storage/mocks"
	orderMocks "hospitality/internal/domains/order/mocks"
	"hospitality/internal/domains/order/model"
	"hospitality/internal/domains/order/model/dto"
	"hospitality/internal/domains/order/service"
	gDto "hospitality/shared/dto"
	gModel "hospitality/shared/model"
	"hospitality/shared/timezone"
)

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockStorage, mockOtel)

	req := dto.CreateOrderRequest{
		CustomerName: "Asha Rao",
		Phone:        "9876543210",
		Email:        "asha@example.com",
		Address:      "12 Lake View Road",
		Items: []dto.OrderItem{
			{Name: "Paneer Tikka", Price: 250},
			{Name: "Garlic Naan", Special: "extra butter", Price: 60},
		},
		PaymentMethod: model.PaymentMethodUPI,
	}

	storedOrder := model.Order{
		ID:            1,
		CustomerName:  "Asha Rao",
		Phone:         "9876543210",
		Email:         "asha@example.com",
		Address:       "12 Lake View Road",
		Items:         `[{"name":"Paneer Tikka","price":250},{"name":"Garlic Naan","special":"extra butter","price":60}]`,
		Status:        model.StatusPending,
		PaymentMethod: model.PaymentMethodUPI,
		Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
	}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantWarnings []string
		wantReceipt  bool
	}{
		{
			name: "successful creation with receipt and email",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)

				mockStorage.EXPECT().
					SaveBytes(gomock.Any(), "order_1.html", "text/html", gomock.Any()).
					Return("/uploads/order_1.html", nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), []string{"asha@example.com"}, "Order Confirmation", gomock.Any()).
					Return(nil)
			},
			wantErr:     false,
			wantReceipt: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "refetch failure still succeeds with warnings",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, errors.New("database error"))
			},
			wantErr: false,
			wantWarnings: []string{
				"receipt could not be generated",
				"confirmation email could not be sent",
			},
		},
		{
			name: "receipt storage failure still succeeds with warning",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)

				mockStorage.EXPECT().
					SaveBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("disk full"))

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:      false,
			wantWarnings: []string{"receipt could not be generated"},
		},
		{
			name: "email failure still succeeds with warning",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOrder, nil)

				mockStorage.EXPECT().
					SaveBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("/uploads/order_1.html", nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp unreachable"))
			},
			wantErr:      false,
			wantReceipt:  true,
			wantWarnings: []string{"confirmation email could not be sent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Order placed successfully", res.Message)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, tt.wantWarnings, res.Warnings)

			if tt.wantReceipt {
				assert.Equal(t, "/uploads/order_1.html", res.ReceiptURL)
			} else {
				assert.Empty(t, res.ReceiptURL)
			}
		})
	}
}

func TestOrderService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockStorage, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetOrdersResponse
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				orders := []model.Order{
					{
						ID:            1,
						CustomerName:  "Asha Rao",
						Items:         `[{"name":"Paneer Tikka","price":250}]`,
						Status:        model.StatusPending,
						PaymentMethod: model.PaymentMethodCOD,
						Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)
			},
			wantErr: false,
			wantResult: dto.GetOrdersResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockStorage, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateOrderStatusRequest
		id        int64
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful accept",
			req: dto.UpdateOrderStatusRequest{
				Status: model.StatusAccepted,
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful reject with reason",
			req: dto.UpdateOrderStatusRequest{
				Status:          model.StatusRejected,
				RejectionReason: "Out of delivery range",
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reject without reason",
			req: dto.UpdateOrderStatusRequest{
				Status: model.StatusRejected,
			},
			id:        1,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "order not found",
			req: dto.UpdateOrderStatusRequest{
				Status: model.StatusAccepted,
			},
			id: 99,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			req: dto.UpdateOrderStatusRequest{
				Status: model.StatusAccepted,
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "update error",
			req: dto.UpdateOrderStatusRequest{
				Status: model.StatusAccepted,
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.UpdateStatus(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockStorage := storageMocks.NewMockStorage(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockStorage, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful export",
			setupMock: func() {
				orders := []model.Order{
					{
						ID:            1,
						CustomerName:  "Asha Rao",
						Phone:         "9876543210",
						Email:         "asha@example.com",
						Items:         `[{"name":"Paneer Tikka","price":250},{"name":"Garlic Naan","price":60}]`,
						Status:        model.StatusAccepted,
						PaymentMethod: model.PaymentMethodUPI,
						Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
					},
					{
						ID:            2,
						CustomerName:  "Ravi Kumar",
						Items:         "not-json",
						Status:        model.StatusPending,
						PaymentMethod: model.PaymentMethodCOD,
						Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)
			},
			wantErr: false,
		},
		{
			name: "empty export",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Order{}, nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			data, err := svc.Export(ctx, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, data)
			}
		})
	}
}
