package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/domain/shifttime"
	"github.com/go-playground/validator/v10"
	"github.com/slack-go/slack"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type shiftService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	partnerID   string
}

func newShift(dm contract.DataManager, slackClient contract.SlackClient, partnerID string) *shiftService {
	return &shiftService{
		dm:          dm,
		slackClient: slackClient,
		partnerID:   partnerID,
	}
}

// CreateShift validates and stores a new shift, then notifies the
// configured partner contact. It returns the created shift and the
// year the shift date resolved to, so callers can show it to the user.
func (s *shiftService) CreateShift(input contract.CreateShiftInput) (*entity.Shift, int, error) {
	if err := validate.Struct(input); err != nil {
		return nil, 0, fmt.Errorf("invalid shift input: %w", err)
	}

	// Validation errors propagate to the caller so bad input can be
	// rejected immediately, before anything is stored
	resolved, err := shifttime.Resolve(input.ShiftDate, input.ShiftTime, time.Now())
	if err != nil {
		return nil, 0, err
	}

	shift := &entity.Shift{
		OwnerID:   input.OwnerID,
		ShiftDate: input.ShiftDate,
		ShiftTime: input.ShiftTime,
		Location:  input.Location,
		IsActive:  true,
	}

	if err := s.dm.Shift().Create(shift); err != nil {
		return nil, 0, fmt.Errorf("failed to save shift: %w", err)
	}

	log.Printf("Shift %d saved: %s %s - %s", shift.ID, shift.ShiftDate, shift.ShiftTime, shift.Location)

	s.notifyPartner(shift)

	return shift, resolved.Year(), nil
}

// notifyPartner tells the configured contact a new shift was scheduled.
// Delivery failures are logged and never fail the creation.
func (s *shiftService) notifyPartner(shift *entity.Shift) {
	if s.partnerID == "" {
		return
	}

	message := partnerNewShiftMessage(shift.ShiftDate, shift.ShiftTime, shift.Location)

	_, _, err := s.slackClient.PostMessage(s.partnerID, slack.MsgOptionText(message, false))
	if err != nil {
		log.Printf("Failed to notify partner about shift %d: %v", shift.ID, err)
		return
	}

	log.Printf("Partner notified about shift %d", shift.ID)
}

func (s *shiftService) ShiftsToday(ownerID string) ([]*entity.Shift, error) {
	return s.dm.Shift().GetByOwnerAndDate(ownerID, shifttime.Today(time.Now()))
}

func (s *shiftService) ShiftsTomorrow(ownerID string) ([]*entity.Shift, error) {
	return s.dm.Shift().GetByOwnerAndDate(ownerID, shifttime.Tomorrow(time.Now()))
}

func (s *shiftService) UpcomingShifts(ownerID string, limit int) ([]*entity.Shift, error) {
	if limit <= 0 || limit > domain.MaxListLimit {
		limit = domain.DefaultUpcomingLimit
	}
	return s.dm.Shift().GetUpcomingByOwner(ownerID, limit)
}

// DeleteShift soft-deletes a shift after checking it belongs to the
// requesting owner. The check and the deactivation run in one
// transaction so two concurrent deletes cannot both succeed. It
// returns the deleted shift for confirmation messages.
func (s *shiftService) DeleteShift(ctx context.Context, ownerID string, shiftID int64) (*entity.Shift, error) {
	var shift *entity.Shift

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		found, err := tx.Shift().GetByID(shiftID)
		if err != nil {
			return fmt.Errorf("failed to get shift: %w", err)
		}

		if found == nil || !found.IsActive || found.OwnerID != ownerID {
			return fmt.Errorf("shift %d not found", shiftID)
		}

		if err := tx.Shift().Deactivate(shiftID); err != nil {
			return fmt.Errorf("failed to deactivate shift: %w", err)
		}

		shift = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Shift %d deactivated by owner %s", shiftID, ownerID)
	return shift, nil
}

// ShiftStatuses returns upcoming shifts with their resolved year and
// remaining-time status. Shifts whose stored date cannot be resolved
// anymore are skipped.
func (s *shiftService) ShiftStatuses(ownerID string, limit int) ([]*contract.ShiftStatus, error) {
	shifts, err := s.UpcomingShifts(ownerID, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statuses := make([]*contract.ShiftStatus, 0, len(shifts))
	for _, shift := range shifts {
		resolved, err := shifttime.Resolve(shift.ShiftDate, shift.ShiftTime, now)
		if err != nil {
			log.Printf("Skipping unresolvable shift %d in status listing: %v", shift.ID, err)
			continue
		}

		hours, _ := shifttime.Classify(resolved, now)
		statuses = append(statuses, &contract.ShiftStatus{
			Shift:          shift,
			ResolvedYear:   resolved.Year(),
			HoursRemaining: hours,
			Status:         shifttime.StatusLabel(hours),
		})
	}

	return statuses, nil
}

func (s *shiftService) Stats(ownerID string) (*contract.OwnerStats, error) {
	total, err := s.dm.Shift().CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	today, err := s.ShiftsToday(ownerID)
	if err != nil {
		return nil, err
	}

	tomorrow, err := s.ShiftsTomorrow(ownerID)
	if err != nil {
		return nil, err
	}

	return &contract.OwnerStats{
		Total:    total,
		Today:    len(today),
		Tomorrow: len(tomorrow),
	}, nil
}
