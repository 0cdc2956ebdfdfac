package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hospitality/config"
	"hospitality/infras/otel/mocks"
	bookingMocks "hospitality/internal/domains/booking/mocks"
	"hospitality/internal/domains/booking/service"
	"hospitality/internal/handlers/booking"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)
	handler := booking.New(svc, mockOtel)

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
			name: "successful booking returns 200",
			body: `{"specialId":3,"customerName":"Asha Rao","phone":"9876543210","address":"12 Lake View Road"}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Booking successful","id":1}`,
		},
		{
			name:      "missing fields return 400",
			body:      `{"customerName":"Asha Rao"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
