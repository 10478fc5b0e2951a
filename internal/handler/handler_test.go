package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/internal/errs"
	"github.com/za-dev/roomfinder-service/internal/handler"
	mock_handler "github.com/za-dev/roomfinder-service/internal/handler/mocks"
	"github.com/za-dev/roomfinder-service/internal/model"
	"github.com/za-dev/roomfinder-service/pkg/validate"
)

func newTestHandler(t *testing.T) (*handler.Handler, *mock_handler.MockBookingService, *mock_handler.MockBucket) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := mock_handler.NewMockBookingService(c)
	bucket := mock_handler.NewMockBucket(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, bucket, handler.NewHub(log), handler.NewEnqueuer(nil, ""), log)
	return h, svc, bucket
}

func TestHandler_RegisterClient(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_handler.MockBookingService)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"id_number":1234,"name":"John","surname":"Doe","email_address":"example@email.com","phone_number":"123456789"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					RegisterClient(context.Background(), model.Client{
						IDNumber: 1234,
						Name:     "John",
						Surname:  "Doe",
						Email:    "example@email.com",
						Phone:    "123456789",
					}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: "",
		},
		{
			name: "err. duplicate id",
			body: `{"id_number":1234,"name":"John","surname":"Doe","email_address":"example@email.com","phone_number":"123456789"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					RegisterClient(context.Background(), gomock.Any()).
					Return(errors.Wrap(errs.ErrClientRegistered, "id number 1234"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id number 1234: client already exists"}`,
		},
		{
			name:         "err. missing fields",
			body:         `{"id_number":1234,"name":"John"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/register", h.RegisterClient)

			r := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_BookRoom(t *testing.T) {
	t.Parallel()
	req := model.BookingRequest{
		ClientID:  1,
		StartDate: model.NewDate(2027, 1, 10),
		EndDate:   model.NewDate(2027, 1, 15),
	}
	type mockBehavior func(r *mock_handler.MockBookingService)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"client_id":1,"start_date":"2027-01-10","end_date":"2027-01-15"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					BookRoom(context.Background(), req).
					Return(model.RoomPrice{Price: 43.75}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"room_price":43.75}`,
		},
		{
			name: "err. dates taken",
			body: `{"client_id":1,"start_date":"2027-01-10","end_date":"2027-01-15"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					BookRoom(context.Background(), req).
					Return(model.RoomPrice{}, errors.Wrap(errs.ErrRoomNotAvailable, "there is already a booking for 2027-01-10..2027-01-15"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"there is already a booking for 2027-01-10..2027-01-15: room is not available"}`,
		},
		{
			name: "err. internal",
			body: `{"client_id":1,"start_date":"2027-01-10","end_date":"2027-01-15"}`,
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					BookRoom(context.Background(), req).
					Return(model.RoomPrice{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"boom"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/book-room", h.BookRoom)

			r := httptest.NewRequest(http.MethodPost, "/book-room", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_handler.MockBookingService)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/cancel-booking?booking_id=1&client_id=1",
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					CancelBooking(context.Background(), 1, 1).
					Return(2.1, nil)
				r.EXPECT().
					BookedRooms(context.Background()).
					Return([]model.BookedRoom{})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"refund_amount":2.1}`,
		},
		{
			name:   "err. not owner",
			target: "/cancel-booking?booking_id=1&client_id=2",
			mockBehavior: func(r *mock_handler.MockBookingService) {
				r.EXPECT().
					CancelBooking(context.Background(), 1, 2).
					Return(0.0, errors.Wrap(errs.ErrInvalidBooking, "client 2 does not own booking 1"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"client 2 does not own booking 1: invalid booking"}`,
		},
		{
			name:         "err. bad booking_id",
			target:       "/cancel-booking?booking_id=abc&client_id=1",
			mockBehavior: func(r *mock_handler.MockBookingService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid booking_id"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/cancel-booking", h.CancelBooking)

			r := httptest.NewRequest(http.MethodPost, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SignedUploadURL(t *testing.T) {
	t.Parallel()
	h, _, bucket := newTestHandler(t)
	bucket.EXPECT().
		SignedUploadURL(context.Background()).
		Return("https://bucket.s3.amazonaws.com/0123456789abcdef0123456789abcdef?X-Amz-Expires=60", nil)

	e := echo.New()
	e.GET("/s3-url", h.SignedUploadURL)

	r := httptest.NewRequest(http.MethodGet, "/s3-url", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"url":"https://bucket.s3.amazonaws.com/0123456789abcdef0123456789abcdef?X-Amz-Expires=60"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ExportBookedRooms(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTestHandler(t)
	svc.EXPECT().
		BookedRooms(context.Background()).
		Return([]model.BookedRoom{
			{
				BookingID: 1,
				ClientID:  1234,
				StartDate: model.NewDate(2027, 1, 10),
				EndDate:   model.NewDate(2027, 1, 15),
				BookedOn:  model.NewDate(2027, 1, 1),
				Price:     43.75,
			},
		})

	e := echo.New()
	e.GET("/bookings/export", h.ExportBookedRooms)

	r := httptest.NewRequest(http.MethodGet, "/bookings/export", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get(echo.HeaderContentType))
	require.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "bookings_")
	require.NotZero(t, w.Body.Len())
}
