//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	"salon-booking/tests/common/httptest"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBooking)

	s.router.POST("/bookings/send-code", s.handler.SendCode)
	s.router.POST("/bookings/confirm", s.handler.Confirm)
	s.router.GET("/bookings", s.handler.ListByDay)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.DELETE("/bookings/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func confirmRequestBody() map[string]any {
	return map[string]any{
		"staff_id":      uuid.New().String(),
		"service_id":    uuid.New().String(),
		"date":          "2030-06-03",
		"start":         "10:00",
		"customer_name": "Alice",
		"contact":       "alice@example.com",
		"code":          "123456",
	}
}

func confirmedBooking(start schedule.TimeOfDay, durationMin int) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC),
		start, durationMin,
		booking.StatusConfirmed,
		"Alice", "alice@example.com",
		time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	)
}

func (s *BookingHandlerTestSuite) TestSendCode() {
	url := "/bookings/send-code"
	body := map[string]any{"contact": "alice@example.com"}

	s.Run("success: returns 202 Accepted", func() {
		s.mockBooking.EXPECT().SendCode(gomock.Any(), "alice@example.com", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 400 on missing contact", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid contact",
				usecaseError:   usecase.ErrInvalidInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid contact",
			},
			{
				name:           "throttled",
				usecaseError:   usecase.ErrTooManyCodeRequests,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Too many code requests",
			},
			{
				name:           "delivery failed",
				usecaseError:   usecase.ErrCodeDeliveryFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Failed to deliver",
			},
			{
				name:           "storage failure",
				usecaseError:   usecase.ErrStorageFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().SendCode(gomock.Any(), "alice@example.com", gomock.Any()).
					Return(tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/bookings/confirm"
	body := confirmRequestBody()

	s.Run("success: returns 201 Created with the booking", func() {
		start, err := schedule.ParseTimeOfDay("10:00")
		s.Require().NoError(err)
		booked := confirmedBooking(start, 45)

		s.mockBooking.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(booked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("confirmed", response.Status)
		s.Equal("10:00", response.Start)
		s.Equal("10:45", response.End)
		s.Equal("2030-06-03", response.Date)
	})

	s.Run("error: 400 on malformed time", func() {
		bad := confirmRequestBody()
		bad["start"] = "25:99"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date or time format")
	})

	s.Run("error: 400 on missing fields", func() {
		bad := confirmRequestBody()
		delete(bad, "code")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "code invalid or expired",
				usecaseError:   usecase.ErrCodeInvalidOrExpired,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Verification code invalid or expired",
			},
			{
				name:           "slot unavailable",
				usecaseError:   usecase.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "closed day",
				usecaseError:   usecase.ErrClosedDay,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "closed",
			},
			{
				name:           "staff not found",
				usecaseError:   usecase.ErrStaffNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Staff not found",
			},
			{
				name:           "service not found",
				usecaseError:   usecase.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "invalid input",
				usecaseError:   usecase.ErrInvalidInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking request",
			},
			{
				name:           "storage failure",
				usecaseError:   usecase.ErrStorageFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Confirm(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListByDay() {
	s.Run("success: returns bookings for the day", func() {
		day := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
		s.mockBooking.EXPECT().ListByDay(gomock.Any(), day).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2030-06-03", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=June-3rd", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking", func() {
		start, err := schedule.ParseTimeOfDay("10:00")
		s.Require().NoError(err)
		stored := confirmedBooking(start, 45)
		s.mockBooking.EXPECT().Get(gomock.Any(), stored.ID()).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+stored.ID().String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(stored.ID(), response.ID)
		s.Equal("10:00", response.Start)
		s.Equal("10:45", response.End)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 404 on unknown booking", func() {
		id := uuid.New()
		s.mockBooking.EXPECT().Get(gomock.Any(), id).Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockBooking.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on unknown booking", func() {
		id := uuid.New()
		s.mockBooking.EXPECT().Cancel(gomock.Any(), id).Return(usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}
