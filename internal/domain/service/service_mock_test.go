package service

import (
	"testing"

	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockShiftRepo   *mocks.MockShiftRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockShiftRepo:   shiftRepo,
		mockSlackClient: slackClient,
	}

	// validate service creation
	shiftService := newShift(dm, slackClient, "")
	require.NotNil(t, shiftService)

	return
}

func testReminderConfig() config.ReminderConfig {
	return config.ReminderConfig{
		PollIntervalSeconds: 60,
		Threshold24h:        24,
		Threshold3h:         3,
		Threshold30min:      0.5,
		Tolerance24h:        0.5,
		Tolerance3h:         0.25,
		Tolerance30min:      0.17,
	}
}
