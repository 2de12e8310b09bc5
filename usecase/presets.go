package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/schedule"
	"main/utils"

	"github.com/google/uuid"
)

const maxPresetActivities = 20

// ActivityWriter is the slice of the activities repo the preset service
// needs; an interface so activation is testable without Mongo.
type ActivityWriter interface {
	InsertBatch(ctx context.Context, activities []*model.ScheduledActivity) error
	DeletePendingForPreset(ctx context.Context, presetID, userID string) error
}

// PresetWriter mirrors the preset repo operations used here.
type PresetWriter interface {
	CreatePreset(ctx context.Context, preset *model.Preset) error
	GetUserPresets(ctx context.Context, userID string) ([]*model.Preset, error)
	GetPresetByID(ctx context.Context, presetID, userID string) (*model.Preset, error)
	UpdatePreset(ctx context.Context, presetID, userID string, updates *model.Preset) error
	SetActivation(ctx context.Context, presetID, userID string, start, end, activatedAt time.Time) error
	ArchivePreset(ctx context.Context, presetID, userID string) error
	DeletePreset(ctx context.Context, presetID, userID string) error
}

type PresetsService struct {
	presets    PresetWriter
	activities ActivityWriter
}

func NewPresetsService(presets *repository.PresetsRepo, activities *repository.ActivitiesRepo) *PresetsService {
	return &PresetsService{presets: presets, activities: activities}
}

// NewPresetsServiceWith wires arbitrary implementations, used by tests.
func NewPresetsServiceWith(presets PresetWriter, activities ActivityWriter) *PresetsService {
	return &PresetsService{presets: presets, activities: activities}
}

// Get the user's presets
func (svc *PresetsService) GetUserPresets(ctx context.Context, userID string) ([]*model.Preset, error) {
	return svc.presets.GetUserPresets(ctx, userID)
}

func (svc *PresetsService) GetPreset(ctx context.Context, presetID, userID string) (*model.Preset, error) {
	return svc.presets.GetPresetByID(ctx, presetID, userID)
}

// Create preset
func (svc *PresetsService) CreatePreset(ctx context.Context, preset *model.Preset) error {
	if preset.UserID == "" {
		return errors.New("user ID is required")
	}
	if preset.Name == "" {
		return errors.New("preset name is required")
	}

	activities, err := validateActivities(preset.Activities)
	if err != nil {
		return err
	}
	preset.Activities = activities

	now := time.Now()
	if preset.CreatedAt.IsZero() {
		preset.CreatedAt = now
	}
	preset.UpdatedAt = now

	if preset.PresetID == "" {
		preset.PresetID = uuid.New().String()
	}

	// New presets start inactive with no activation window
	preset.IsActive = false
	preset.IsArchived = false

	return svc.presets.CreatePreset(ctx, preset)
}

// Update preset name, emoji and activity set
func (svc *PresetsService) UpdatePreset(ctx context.Context, presetID, userID string, updates *model.Preset) error {
	existing, err := svc.presets.GetPresetByID(ctx, presetID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("preset not found")
	}
	if existing.IsArchived {
		return errors.New("cannot update an archived preset")
	}
	if updates.Name == "" {
		return errors.New("preset name is required")
	}

	activities, err := validateActivities(updates.Activities)
	if err != nil {
		return err
	}
	updates.Activities = activities

	return svc.presets.UpdatePreset(ctx, presetID, userID, updates)
}

// ActivatePreset expands the recurrence rule from the anchor date,
// persists the activation window on the preset (last activation wins)
// and materializes one scheduled activity per occurrence per activity.
// The now argument becomes last_activated_at; it is passed in rather
// than read here so the scheduling math stays deterministic.
func (svc *PresetsService) ActivatePreset(ctx context.Context, presetID, userID string, anchor time.Time, rule model.RecurrenceRule, now time.Time) (*model.Preset, error) {
	preset, err := svc.presets.GetPresetByID(ctx, presetID, userID)
	if err != nil {
		return nil, err
	}
	if preset == nil {
		return nil, errors.New("preset not found")
	}
	if preset.IsArchived {
		return nil, errors.New("cannot activate an archived preset")
	}

	window, occurrences := schedule.PlanOccurrences(anchor, rule)

	if err := svc.presets.SetActivation(ctx, presetID, userID, window.Start, window.End, now); err != nil {
		return nil, err
	}

	// Replace the pending instances of any previous activation
	if err := svc.activities.DeletePendingForPreset(ctx, presetID, userID); err != nil {
		return nil, err
	}

	instances := materializeActivities(preset, occurrences, now)
	if err := svc.activities.InsertBatch(ctx, instances); err != nil {
		return nil, err
	}

	ruleType := string(rule.Type)
	if ruleType == "" {
		ruleType = string(model.RecurrenceNone)
	}
	utils.TrackPresetActivation(ruleType)
	utils.ScheduledActivitiesCreated.Add(float64(len(instances)))

	preset.IsActive = true
	preset.LastActivatedAt = now
	preset.ActivationStart = window.Start
	preset.ActivationEnd = window.End
	return preset, nil
}

// ArchivePreset marks the preset archived; archived presets cannot be
// activated again.
func (svc *PresetsService) ArchivePreset(ctx context.Context, presetID, userID string) error {
	existing, err := svc.presets.GetPresetByID(ctx, presetID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("preset not found")
	}
	return svc.presets.ArchivePreset(ctx, presetID, userID)
}

// Delete preset and its pending scheduled instances
func (svc *PresetsService) DeletePreset(ctx context.Context, presetID, userID string) error {
	existing, err := svc.presets.GetPresetByID(ctx, presetID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("preset not found")
	}

	if err := svc.activities.DeletePendingForPreset(ctx, presetID, userID); err != nil {
		return err
	}
	return svc.presets.DeletePreset(ctx, presetID, userID)
}

func materializeActivities(preset *model.Preset, occurrences []time.Time, now time.Time) []*model.ScheduledActivity {
	instances := make([]*model.ScheduledActivity, 0, len(occurrences)*len(preset.Activities))
	for _, day := range occurrences {
		date := schedule.FormatDate(day)
		for _, activity := range preset.Activities {
			instances = append(instances, &model.ScheduledActivity{
				ActivityID:  uuid.New().String(),
				UserID:      preset.UserID,
				PresetID:    preset.PresetID,
				TemplateID:  activity.TemplateID,
				Category:    activity.Category,
				Date:        date,
				DaySlot:     activity.DaySlot,
				StartTime:   activity.StartTime,
				Duration:    activity.Duration,
				Repetitions: activity.Repetitions,
				Completed:   false,
				CreatedAt:   now,
			})
		}
	}
	return instances
}

// validateActivities checks each activity reference and returns a fresh
// copy so the stored preset never aliases caller slices.
func validateActivities(activities []model.PresetActivity) ([]model.PresetActivity, error) {
	if len(activities) > maxPresetActivities {
		return nil, errors.New("preset cannot exceed 20 activities")
	}

	copied := make([]model.PresetActivity, len(activities))
	for i, a := range activities {
		if a.TemplateID == "" {
			return nil, errors.New("activity template ID is required")
		}
		if a.StartTime != "" && !utils.ValidateTimeString(a.StartTime) {
			return nil, errors.New("activity start time must be HH:MM")
		}
		if a.Duration < 0 {
			return nil, errors.New("activity duration cannot be negative")
		}

		// The slot stored on the activity always agrees with its start
		// time; clients may omit either one.
		switch {
		case a.DaySlot == "":
			a.DaySlot = string(schedule.Classify(a.StartTime))
		case !schedule.ValidSlot(schedule.DaySlot(a.DaySlot)):
			return nil, errors.New("unknown day slot " + a.DaySlot)
		case a.StartTime == "":
			a.StartTime = schedule.SlotDefaultTime(schedule.DaySlot(a.DaySlot))
		}
		copied[i] = a
	}
	return copied, nil
}
