//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

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

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *usecasemock.MockAvailabilityUseCase
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability)

	s.router.GET("/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	staffID := uuid.New()
	day := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the slot list", func() {
		nine, err := schedule.ParseTimeOfDay("09:00")
		s.Require().NoError(err)
		nineThirty, err := schedule.ParseTimeOfDay("09:30")
		s.Require().NoError(err)

		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), staffID, day, nil).
			Return([]schedule.TimeOfDay{nine, nineThirty}, nil).Times(1)

		url := "/availability?staff_id=" + staffID.String() + "&date=2030-06-03"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"09:00", "09:30"}, response.Slots)
		s.Equal("2030-06-03", response.Date)
	})

	s.Run("success: closed day yields an empty list", func() {
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), staffID, day, nil).
			Return([]schedule.TimeOfDay{}, nil).Times(1)

		url := "/availability?staff_id=" + staffID.String() + "&date=2030-06-03"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("success: forwards the service id", func() {
		serviceID := uuid.New()
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), staffID, day, &serviceID).
			Return([]schedule.TimeOfDay{}, nil).Times(1)

		url := "/availability?staff_id=" + staffID.String() + "&date=2030-06-03&service_id=" + serviceID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed staff_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?staff_id=nope&date=2030-06-03", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid staff_id")
	})

	s.Run("error: 400 on malformed date", func() {
		url := "/availability?staff_id=" + staffID.String() + "&date=03/06/2030"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 400 on malformed service_id", func() {
		url := "/availability?staff_id=" + staffID.String() + "&date=2030-06-03&service_id=nope"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service_id")
	})

	s.Run("error: 404 on unknown staff", func() {
		s.mockAvailability.EXPECT().DaySlots(gomock.Any(), staffID, day, nil).
			Return(nil, usecase.ErrStaffNotFound).Times(1)

		url := "/availability?staff_id=" + staffID.String() + "&date=2030-06-03"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff not found")
	})
}
