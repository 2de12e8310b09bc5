package usecase

import (
	"context"
	"errors"

	"main/model"
	"main/repository"
	"main/schedule"
	"main/utils"
)

type ActivitiesService struct {
	repo *repository.ActivitiesRepo
}

func NewActivitiesService(repo *repository.ActivitiesRepo) *ActivitiesService {
	return &ActivitiesService{repo: repo}
}

// GetByDate returns the day's scheduled activities, optionally narrowed
// to one day-part slot.
func (svc *ActivitiesService) GetByDate(ctx context.Context, userID, date, slot string) ([]*model.ScheduledActivity, error) {
	if !utils.ValidateDateString(date) {
		return nil, errors.New("date must be yyyy-MM-dd")
	}

	activities, err := svc.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if slot == "" {
		return activities, nil
	}
	if !schedule.ValidSlot(schedule.DaySlot(slot)) {
		return nil, errors.New("unknown day slot " + slot)
	}
	return filterScheduledBySlot(activities, schedule.DaySlot(slot)), nil
}

func (svc *ActivitiesService) GetInRange(ctx context.Context, userID, from, to string) ([]*model.ScheduledActivity, error) {
	if !utils.ValidateDateString(from) || !utils.ValidateDateString(to) {
		return nil, errors.New("range bounds must be yyyy-MM-dd")
	}
	if from > to {
		return nil, errors.New("range start must not be after range end")
	}
	return svc.repo.GetInRange(ctx, userID, from, to)
}

func (svc *ActivitiesService) SetCompleted(ctx context.Context, activityID, userID string, completed bool) error {
	return svc.repo.SetCompleted(ctx, activityID, userID, completed)
}

// filterScheduledBySlot applies the day-part classifier to materialized
// instances the same way schedule.FilterBySlot does for preset
// activities: anytime keeps only untimed entries, any other slot keeps
// entries whose start time classifies into it.
func filterScheduledBySlot(activities []*model.ScheduledActivity, slot schedule.DaySlot) []*model.ScheduledActivity {
	filtered := make([]*model.ScheduledActivity, 0, len(activities))
	for _, a := range activities {
		if slot == schedule.SlotAnytime {
			if a.StartTime == "" {
				filtered = append(filtered, a)
			}
			continue
		}
		if a.StartTime != "" && schedule.Classify(a.StartTime) == slot {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
