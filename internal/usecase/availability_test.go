//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"
	usecasemock "salon-booking/tests/mock/usecase"
)

type availabilityFixture struct {
	uc       usecase.AvailabilityUseCase
	staffs   *usecasemock.MockStaffReads
	services *usecasemock.MockServiceReads
	bookings *usecasemock.MockBookingReads
	clock    *clock.MockClock
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	open, _ := schedule.NewTimeOfDay(9, 0)
	close, _ := schedule.NewTimeOfDay(17, 0)
	policy, err := schedule.NewPolicy(open, close, []time.Weekday{time.Sunday}, 30, 30)
	require.NoError(t, err)

	f := &availabilityFixture{
		staffs:   usecasemock.NewMockStaffReads(ctrl),
		services: usecasemock.NewMockServiceReads(ctrl),
		bookings: usecasemock.NewMockBookingReads(ctrl),
		clock:    clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = usecase.NewAvailabilityUseCase(policy, f.staffs, f.services, f.bookings, f.clock)
	return f
}

func TestAvailabilityUseCase_DaySlots(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("full grid with calendar defaults", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)
		f.bookings.EXPECT().BlockingIntervals(ctx, staffID, monday).Return(nil, nil)

		slots, err := f.uc.DaySlots(ctx, staffID, monday, nil)
		require.NoError(t, err)
		require.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0].String())
		assert.Equal(t, "16:30", slots[15].String())
	})

	t.Run("service dimensions shape the grid", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()
		serviceID := uuid.New()

		// 60-minute service: last start moves back to 16:00.
		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)
		f.services.EXPECT().FindByID(ctx, serviceID).Return(stubService(60), nil)
		f.bookings.EXPECT().BlockingIntervals(ctx, staffID, monday).Return(nil, nil)

		slots, err := f.uc.DaySlots(ctx, staffID, monday, &serviceID)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.Equal(t, "16:00", slots[len(slots)-1].String())
	})

	t.Run("unknown service falls back to defaults", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()
		serviceID := uuid.New()

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)
		f.services.EXPECT().FindByID(ctx, serviceID).Return(nil, notFoundErr())
		f.bookings.EXPECT().BlockingIntervals(ctx, staffID, monday).Return(nil, nil)

		slots, err := f.uc.DaySlots(ctx, staffID, monday, &serviceID)
		require.NoError(t, err)
		assert.Len(t, slots, 16)
	})

	t.Run("closed day is empty, not an error", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()
		sunday := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)

		slots, err := f.uc.DaySlots(ctx, staffID, sunday, nil)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("busy intervals are filtered out", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()
		tenAM, _ := schedule.NewTimeOfDay(10, 0)

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)
		f.bookings.EXPECT().BlockingIntervals(ctx, staffID, monday).
			Return([]schedule.Interval{schedule.NewInterval(tenAM, 30)}, nil)

		slots, err := f.uc.DaySlots(ctx, staffID, monday, nil)
		require.NoError(t, err)
		assert.Len(t, slots, 15)
		for _, s := range slots {
			assert.NotEqual(t, "10:00", s.String())
		}
	})

	t.Run("unknown staff", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(nil, notFoundErr())

		_, err := f.uc.DaySlots(ctx, staffID, monday, nil)
		assert.ErrorIs(t, err, usecase.ErrStaffNotFound)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		staffID := uuid.New()

		f.staffs.EXPECT().FindByID(ctx, staffID).Return(stubStaff(staffID), nil)
		f.bookings.EXPECT().BlockingIntervals(ctx, staffID, monday).
			Return(nil, infra.WrapRepoErr(infra.KindDBFailure, "query failed", errs.New("conn reset")))

		_, err := f.uc.DaySlots(ctx, staffID, monday, nil)
		assert.ErrorIs(t, err, usecase.ErrStorageFailure)
	})
}
