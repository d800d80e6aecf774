package service

import (
	"log"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/domain/shifttime"
	"github.com/slack-go/slack"
)

// threshold is one reminder lead time. A reminder fires when the hours
// remaining until a shift fall inside [hours-tolerance, hours+tolerance]
// and its flag is still unset.
type threshold struct {
	name      string
	hours     float64
	tolerance float64
	message   func(date, time, location string) string
}

type reminderService struct {
	dm           contract.DataManager
	slackClient  contract.SlackClient
	pollInterval time.Duration
	thresholds   []threshold
	stopChan     chan struct{}
	running      bool
}

func newReminder(dm contract.DataManager, slackClient contract.SlackClient, cfg config.ReminderConfig) *reminderService {
	return &reminderService{
		dm:           dm,
		slackClient:  slackClient,
		pollInterval: time.Duration(cfg.PollIntervalSeconds) * time.Second,
		// Evaluation order is fixed: 24h, then 3h, then 30min
		thresholds: []threshold{
			{name: domain.Reminder24h, hours: cfg.Threshold24h, tolerance: cfg.Tolerance24h, message: reminder24hMessage},
			{name: domain.Reminder3h, hours: cfg.Threshold3h, tolerance: cfg.Tolerance3h, message: reminder3hMessage},
			{name: domain.Reminder30min, hours: cfg.Threshold30min, tolerance: cfg.Tolerance30min, message: reminder30minMessage},
		},
		stopChan: make(chan struct{}),
		running:  false,
	}
}

func (s *reminderService) Start() {
	if s.running {
		return
	}
	s.running = true

	// A tolerance narrower than half the poll interval means a shift
	// can cross the whole reminder window between two ticks
	for _, t := range s.thresholds {
		if t.tolerance*3600 < s.pollInterval.Seconds()/2 {
			log.Printf("Warning: %s tolerance (%.2fh) is smaller than half the poll interval (%s); reminders may be skipped", t.name, t.tolerance, s.pollInterval)
		}
	}

	log.Println("Reminder service starting...")
	go s.mainLoop()
}

// Stop prevents the next tick from starting. An in-flight tick runs to
// completion.
func (s *reminderService) Stop() {
	if !s.running {
		return
	}
	log.Println("Reminder service stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *reminderService) mainLoop() {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		s.checkShifts(time.Now())

		select {
		case <-ticker.C:
		case <-s.stopChan:
			return
		}
	}
}

// checkShifts is one tick: every active shift is re-evaluated against
// the reminder thresholds. Errors never escape a tick.
func (s *reminderService) checkShifts(now time.Time) {
	shifts, err := s.dm.Shift().GetActiveShifts()
	if err != nil {
		log.Printf("Error loading active shifts: %v", err)
		return
	}

	for _, shift := range shifts {
		s.processShift(shift, now)
	}
}

func (s *reminderService) processShift(shift *entity.Shift, now time.Time) {
	resolved, err := shifttime.Resolve(shift.ShiftDate, shift.ShiftTime, now)
	if err != nil {
		// Corrupted or no-longer-valid stored date: skip this tick,
		// the next tick re-evaluates it
		log.Printf("Warning: cannot resolve date/time for shift %d: %v", shift.ID, err)
		return
	}

	// Expired shifts get no further reminders
	if resolved.Before(now) {
		return
	}

	hoursRemaining, _ := shifttime.Classify(resolved, now)

	for _, t := range s.thresholds {
		if shift.ReminderSent(t.name) {
			continue
		}

		if hoursRemaining < t.hours-t.tolerance || hoursRemaining > t.hours+t.tolerance {
			continue
		}

		s.sendReminder(shift, t)
	}
}

func (s *reminderService) sendReminder(shift *entity.Shift, t threshold) {
	// Mark as sent before delivering, so a delivery failure can never
	// turn into a duplicate reminder on a later tick. If marking
	// fails, delivery is skipped and the next tick retries.
	if err := s.dm.Shift().MarkReminderSent(shift.ID, t.name); err != nil {
		log.Printf("Failed to mark reminder %s as sent for shift %d: %v", t.name, shift.ID, err)
		return
	}

	message := t.message(shift.ShiftDate, shift.ShiftTime, shift.Location)

	_, _, err := s.slackClient.PostMessage(shift.OwnerID, slack.MsgOptionText(message, false))
	if err != nil {
		// No retry and no flag revert: missing one reminder is judged
		// better than sending it twice
		log.Printf("Failed to send reminder %s for shift %d: %v", t.name, shift.ID, err)
		return
	}

	log.Printf("Reminder %s sent for shift %d", t.name, shift.ID)
}
