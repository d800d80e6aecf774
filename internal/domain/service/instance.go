package service

import (
	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
)

type Instance struct {
	Shift    *shiftService
	Reminder *reminderService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *Instance {
	return &Instance{
		Shift:    newShift(dm, slackClient, cfg.PartnerID),
		Reminder: newReminder(dm, slackClient, cfg.Reminder),
	}
}
