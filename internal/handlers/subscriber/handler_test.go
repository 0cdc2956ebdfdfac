package subscriber_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hospitality/config"
	mailMocks "hospitality/infras/mail/mocks"
	"hospitality/infras/otel/mocks"
	subscriberMocks "hospitality/internal/domains/subscriber/mocks"
	"hospitality/internal/domains/subscriber/service"
	"hospitality/internal/handlers/subscriber"
	"hospitality/shared/constant"
)

func TestSubscriberHandler_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := subscriberMocks.NewMockSubscriber(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockMailer, mockOtel)
	handler := subscriber.New(svc, mockOtel)

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
			name: "new email subscribes successfully",
			body: `{"email":"asha@example.com"}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), []string{"asha@example.com"}, gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Subscribed successfully"}`,
		},
		{
			name: "duplicate email returns 409 with message",
			body: `{"email":"asha@example.com"}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
			wantBody: `{"message":"Email already subscribed"}`,
		},
		{
			name:      "invalid email returns 400",
			body:      `{"email":"not-an-email"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
