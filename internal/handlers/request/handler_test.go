package request_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hospitality/config"
	mailMocks "hospitality/infras/mail/mocks"
	"hospitality/infras/otel/mocks"
	requestMocks "hospitality/internal/domains/request/mocks"
	"hospitality/internal/domains/request/service"
	"hospitality/internal/handlers/request"
)

func TestRequestHandler_CreateRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := requestMocks.NewMockRequest(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockOtel)
	handler := request.New(svc, mockOtel)

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		handler.Router(api)
	})

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(7), nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	body := `{"name":"Asha Rao","email":"asha@example.com","message":"Looking for a venue for a reception."}`
	req := httptest.NewRequest(http.MethodPost, "/api/request-information", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Request submitted","id":7}`, rec.Body.String())
}

func TestRequestHandler_UpdateRequestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := requestMocks.NewMockRequest(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockOtel)
	handler := request.New(svc, mockOtel)

	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		handler.Router(api)
	})

	tests := []struct {
		name      string
		body      string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name:      "invalid status returns 400 with message",
			body:      `{"status":"invalid"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"message":"Invalid status"}`,
		},
		{
			name: "missing request returns 404 with message",
			body: `{"status":"contacted"}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Request not found"}`,
		},
		{
			name: "successful update",
			body: `{"status":"contacted"}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPut, "/api/requests/5", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
