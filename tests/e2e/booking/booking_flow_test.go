//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/availability"
	sendCodeURL     = "/api/bookings/send-code"
	confirmURL      = "/api/bookings/confirm"
	bookingsURL     = "/api/bookings"
	loginURL        = "/api/auth/login"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(bookingSuite))
}

// nextOpenDay returns a weekday at least a week out, so the same-day rule
// never interferes and the calendar is open.
func nextOpenDay() time.Time {
	day := time.Now().UTC().AddDate(0, 0, 7)
	for day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// nextSunday returns a closed day at least a week out.
func nextSunday() time.Time {
	day := time.Now().UTC().AddDate(0, 0, 7)
	for day.Weekday() != time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

type fixtureIDs struct {
	staffID   uuid.UUID
	serviceID uuid.UUID
}

func (s *bookingSuite) seed() fixtureIDs {
	ctx := context.Background()

	staffID, err := dbtest.SeedStaff(ctx, s.DB, "Dana", "dana@example.com", "password123", true)
	s.Require().NoError(err)

	serviceID, err := dbtest.SeedService(ctx, s.DB, "Haircut", 30, nil, 4500)
	s.Require().NoError(err)

	return fixtureIDs{staffID: staffID, serviceID: serviceID}
}

func (s *bookingSuite) issueCode(contact string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sendCodeURL,
		map[string]any{"contact": contact}, "")
	s.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())

	code, err := dbtest.LatestCode(context.Background(), s.DB, contact)
	s.Require().NoError(err)
	return code
}

func (s *bookingSuite) confirmBody(ids fixtureIDs, day time.Time, start, contact, code string) map[string]any {
	return map[string]any{
		"staff_id":      ids.staffID.String(),
		"service_id":    ids.serviceID.String(),
		"date":          day.Format("2006-01-02"),
		"start":         start,
		"customer_name": "Alice",
		"contact":       contact,
		"code":          code,
	}
}

func (s *bookingSuite) slots(ids fixtureIDs, day time.Time) []string {
	url := availabilityURL + "?staff_id=" + ids.staffID.String() +
		"&date=" + day.Format("2006-01-02") + "&service_id=" + ids.serviceID.String()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")

	var response resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return response.Slots
}

func (s *bookingSuite) login(email, password string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		map[string]any{"email": email, "password": password}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return response.AccessToken
}

func (s *bookingSuite) TestCodeGatedConfirmation() {
	s.Run("confirm books the slot and burns the code", func() {
		ids := s.seed()
		day := nextOpenDay()

		s.Contains(s.slots(ids, day), "10:00")

		code := s.issueCode("alice@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "10:00", "alice@example.com", code), "")

		var booked resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.Equal("confirmed", booked.Status)
		s.Equal("10:30", booked.End)

		s.NotContains(s.slots(ids, day), "10:00")

		// A fresh code cannot take the same slot.
		otherCode := s.issueCode("bob@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "10:00", "bob@example.com", otherCode), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")

		// The consumed code cannot be replayed, even for a free slot.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "11:00", "alice@example.com", code), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid or expired")
	})

	s.Run("a failed confirmation still consumes the code", func() {
		ids := s.seed()
		day := nextOpenDay()

		blocker := s.issueCode("bob@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "14:00", "bob@example.com", blocker), "")
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		code := s.issueCode("alice@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "14:00", "alice@example.com", code), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

		// Retrying a free slot with the spent code fails: a new code is needed.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "15:00", "alice@example.com", code), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid or expired")
	})

	s.Run("expired code is rejected", func() {
		ids := s.seed()

		err := dbtest.SeedCode(context.Background(), s.DB,
			"alice@example.com", "314159", time.Now().UTC().Add(-time.Minute))
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, nextOpenDay(), "10:00", "alice@example.com", "314159"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid or expired")
	})

	s.Run("an older still-valid code still verifies", func() {
		ids := s.seed()
		ctx := context.Background()

		// Two live codes for the same contact; issuing the second does not
		// invalidate the first.
		s.Require().NoError(dbtest.SeedCode(ctx, s.DB,
			"alice@example.com", "111111", time.Now().UTC().Add(9*time.Minute)))
		s.Require().NoError(dbtest.SeedCode(ctx, s.DB,
			"alice@example.com", "222222", time.Now().UTC().Add(10*time.Minute)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, nextOpenDay(), "10:00", "alice@example.com", "111111"), "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("closed day is rejected", func() {
		ids := s.seed()

		code := s.issueCode("alice@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, nextSunday(), "10:00", "alice@example.com", code), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "closed")
	})

	s.Run("unknown code is rejected", func() {
		ids := s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, nextOpenDay(), "10:00", "alice@example.com", "000000"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid or expired")
	})
}

func (s *bookingSuite) TestConcurrentConfirmation() {
	s.Run("simultaneous confirmations for one slot yield a single booking", func() {
		ids := s.seed()
		day := nextOpenDay()
		ctx := context.Background()

		s.Require().NoError(dbtest.SeedCode(ctx, s.DB,
			"alice@example.com", "111111", time.Now().UTC().Add(10*time.Minute)))
		s.Require().NoError(dbtest.SeedCode(ctx, s.DB,
			"bob@example.com", "222222", time.Now().UTC().Add(10*time.Minute)))

		attempts := []struct{ contact, code string }{
			{"alice@example.com", "111111"},
			{"bob@example.com", "222222"},
		}

		statuses := make(chan int, len(attempts))
		release := make(chan struct{})
		var wg sync.WaitGroup
		for _, attempt := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-release
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
					s.confirmBody(ids, day, "10:00", attempt.contact, attempt.code), "")
				statuses <- rec.Code
			}()
		}
		close(release)
		wg.Wait()
		close(statuses)

		var got []int
		for code := range statuses {
			got = append(got, code)
		}
		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, got)

		token := s.login("dana@example.com", "password123")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"?date="+day.Format("2006-01-02"), nil, token)

		var listed []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Len(listed, 1)
	})
}

func (s *bookingSuite) TestSendCodeThrottling() {
	s.Run("immediate resend is throttled", func() {
		s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sendCodeURL,
			map[string]any{"contact": "alice@example.com"}, "")
		s.Require().Equal(http.StatusAccepted, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sendCodeURL,
			map[string]any{"contact": "alice@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many code requests")
	})
}

func (s *bookingSuite) TestCancelFreesTheSlot() {
	s.Run("cancelled slot becomes bookable again", func() {
		ids := s.seed()
		day := nextOpenDay()

		code := s.issueCode("alice@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "10:00", "alice@example.com", code), "")

		var booked resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.NotContains(s.slots(ids, day), "10:00")

		token := s.login("dana@example.com", "password123")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			bookingsURL+"/"+booked.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		// The row is kept for history with its status flipped.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"/"+booked.ID.String(), nil, token)
		var cancelled resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)

		s.Contains(s.slots(ids, day), "10:00")

		// Exclusion constraint ignores cancelled rows, so rebooking works.
		newCode := s.issueCode("bob@example.com")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "10:00", "bob@example.com", newCode), "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})
}

func (s *bookingSuite) TestStaffBookingList() {
	s.Run("listing requires authentication", func() {
		ids := s.seed()
		day := nextOpenDay()

		code := s.issueCode("alice@example.com")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL,
			s.confirmBody(ids, day, "10:00", "alice@example.com", code), "")
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		listURL := bookingsURL + "?date=" + day.Format("2006-01-02")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)

		token := s.login("dana@example.com", "password123")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, token)

		var listed []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal("Dana", listed[0].StaffName)
		s.Equal("Haircut", listed[0].ServiceName)
		s.Equal("10:00", listed[0].Start)
	})
}
