package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/domain/shifttime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validCreateInput() contract.CreateShiftInput {
	return contract.CreateShiftInput{
		OwnerID:   "U42",
		ShiftDate: "15/03",
		ShiftTime: "19:00",
		Location:  "Hospital Evangélico",
	}
}

func Test_shiftService_CreateShift(t *testing.T) {
	t.Run("Should create a shift and return the resolved year", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockShiftRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(shift *entity.Shift) error {
			shift.ID = 7
			return nil
		})

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		shift, year, err := s.CreateShift(validCreateInput())

		require.NoError(t, err)
		require.NotNil(t, shift)
		assert.Equal(t, int64(7), shift.ID)
		assert.Equal(t, "U42", shift.OwnerID)
		assert.Equal(t, "15/03", shift.ShiftDate)
		assert.Equal(t, "19:00", shift.ShiftTime)
		assert.Equal(t, "Hospital Evangélico", shift.Location)
		assert.True(t, shift.IsActive)
		assert.False(t, shift.Reminder24h)

		// The inferred year is always this year or the next
		currentYear := time.Now().Year()
		assert.GreaterOrEqual(t, year, currentYear)
		assert.LessOrEqual(t, year, currentYear+1)
	})

	t.Run("Should notify the configured partner", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
		m.mockSlackClient.EXPECT().PostMessage("U99", gomock.Any()).Return("", "", nil)

		s := newShift(m.mockDataManager, m.mockSlackClient, "U99")
		_, _, err := s.CreateShift(validCreateInput())

		require.NoError(t, err)
	})

	t.Run("Should succeed even when the partner notification fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(nil)
		m.mockSlackClient.EXPECT().PostMessage("U99", gomock.Any()).Return("", "", fmt.Errorf("slack unavailable"))

		s := newShift(m.mockDataManager, m.mockSlackClient, "U99")
		_, _, err := s.CreateShift(validCreateInput())

		require.NoError(t, err)
	})

	t.Run("Should reject an invalid date without touching the store", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		input := validCreateInput()
		input.ShiftDate = "32/01"

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, _, err := s.CreateShift(input)

		require.Error(t, err)
		assert.ErrorIs(t, err, shifttime.ErrInvalidFormat)
	})

	t.Run("Should reject an invalid time without touching the store", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		input := validCreateInput()
		input.ShiftTime = "25:00"

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, _, err := s.CreateShift(input)

		require.Error(t, err)
		assert.ErrorIs(t, err, shifttime.ErrInvalidFormat)
	})

	t.Run("Should reject a missing location", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		input := validCreateInput()
		input.Location = ""

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, _, err := s.CreateShift(input)

		require.Error(t, err)
	})

	t.Run("Should propagate a store failure", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockShiftRepo.EXPECT().Create(gomock.Any()).Return(fmt.Errorf("disk full"))

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, _, err := s.CreateShift(validCreateInput())

		require.Error(t, err)
	})
}

func Test_shiftService_DeleteShift(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Shift{
		ID: 12, OwnerID: "U42", ShiftDate: "15/03", ShiftTime: "19:00",
		Location: "Hospital A", IsActive: true,
	}

	expectTransaction := func(m allMocks) {
		m.mockDataManager.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
				return fn(m.mockDataManager)
			})
	}

	t.Run("Should soft-delete an owned shift", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectTransaction(m)
		m.mockShiftRepo.EXPECT().GetByID(int64(12)).Return(stored, nil)
		m.mockShiftRepo.EXPECT().Deactivate(int64(12)).Return(nil)

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		shift, err := s.DeleteShift(ctx, "U42", 12)

		require.NoError(t, err)
		assert.Equal(t, stored, shift)
	})

	t.Run("Should refuse to delete another owner's shift", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectTransaction(m)
		m.mockShiftRepo.EXPECT().GetByID(int64(12)).Return(stored, nil)

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, err := s.DeleteShift(ctx, "U666", 12)

		require.Error(t, err)
	})

	t.Run("Should report a missing shift", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectTransaction(m)
		m.mockShiftRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, err := s.DeleteShift(ctx, "U42", 99)

		require.Error(t, err)
	})

	t.Run("Should report an already deleted shift as missing", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectTransaction(m)
		inactive := *stored
		inactive.IsActive = false
		m.mockShiftRepo.EXPECT().GetByID(int64(12)).Return(&inactive, nil)

		s := newShift(m.mockDataManager, m.mockSlackClient, "")
		_, err := s.DeleteShift(ctx, "U42", 12)

		require.Error(t, err)
	})
}

func Test_shiftService_ShiftStatuses(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ok := &entity.Shift{
		ID: 1, OwnerID: "U42", ShiftDate: "15/03", ShiftTime: "10:00",
		Location: "Hospital A", IsActive: true,
	}
	corrupted := &entity.Shift{
		ID: 2, OwnerID: "U42", ShiftDate: "31/02", ShiftTime: "10:00",
		Location: "Hospital B", IsActive: true,
	}

	m.mockShiftRepo.EXPECT().GetUpcomingByOwner("U42", 5).Return([]*entity.Shift{ok, corrupted}, nil)

	s := newShift(m.mockDataManager, m.mockSlackClient, "")
	statuses, err := s.ShiftStatuses("U42", 5)

	require.NoError(t, err)
	require.Len(t, statuses, 1, "unresolvable shifts are skipped")

	st := statuses[0]
	assert.Equal(t, ok, st.Shift)
	assert.NotZero(t, st.ResolvedYear)
	assert.NotEmpty(t, st.Status)
}

func Test_shiftService_UpcomingShifts(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "Should pass through a sane limit", limit: 10, wantLimit: 10},
		{name: "Should default a zero limit", limit: 0, wantLimit: 5},
		{name: "Should default a negative limit", limit: -3, wantLimit: 5},
		{name: "Should default an oversized limit", limit: 5000, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockShiftRepo.EXPECT().GetUpcomingByOwner("U42", tt.wantLimit).Return(nil, nil)

			s := newShift(m.mockDataManager, m.mockSlackClient, "")
			_, err := s.UpcomingShifts("U42", tt.limit)
			require.NoError(t, err)
		})
	}
}

func Test_shiftService_Stats(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Now()
	today := shifttime.Today(now)
	tomorrow := shifttime.Tomorrow(now)

	m.mockShiftRepo.EXPECT().CountByOwner("U42").Return(7, nil)
	m.mockShiftRepo.EXPECT().GetByOwnerAndDate("U42", today).Return([]*entity.Shift{{}, {}}, nil)
	m.mockShiftRepo.EXPECT().GetByOwnerAndDate("U42", tomorrow).Return([]*entity.Shift{{}}, nil)

	s := newShift(m.mockDataManager, m.mockSlackClient, "")
	stats, err := s.Stats("U42")

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 1, stats.Tomorrow)
}
