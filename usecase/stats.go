package usecase

import (
	"context"

	"main/model"
	"main/repository"
)

type StatsService struct {
	Entries    *repository.EntriesRepo
	Presets    *repository.PresetsRepo
	Activities *repository.ActivitiesRepo
	Users      *repository.UserRepo
	Sessions   *repository.SessionRepo
}

// GetUserStats assembles the dashboard statistics in one call
func (svc *StatsService) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	stats := &model.UserStats{}

	entries, err := svc.Entries.GetUserEntries(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	stats.JournalStats.Total = len(entries)
	stats.JournalStats.EmotionCounts = make(map[string]int)

	var moodSum, energySum, energyCount int
	for _, entry := range entries {
		moodSum += entry.Mood
		if entry.Energy > 0 {
			energySum += entry.Energy
			energyCount++
		}
		for _, emotion := range entry.Emotions {
			stats.JournalStats.EmotionCounts[emotion]++
		}
	}
	if len(entries) > 0 {
		stats.JournalStats.AverageMood = float64(moodSum) / float64(len(entries))
	}
	if energyCount > 0 {
		stats.JournalStats.AverageEnergy = float64(energySum) / float64(energyCount)
	}

	total, active, archived, err := svc.Presets.CountUserPresets(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.PresetStats.Total = total
	stats.PresetStats.Active = active
	stats.PresetStats.Archived = archived

	scheduled, completed, err := svc.Activities.CountByCompletion(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.ActivityStats.Scheduled = scheduled
	stats.ActivityStats.Completed = completed
	stats.ActivityStats.Pending = scheduled - completed
	if scheduled > 0 {
		stats.ActivityStats.CompletionPercent = float64(completed) / float64(scheduled) * 100
	}

	distribution, err := svc.Activities.SlotDistribution(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.ActivityStats.SlotDistribution = distribution

	user, err := svc.Users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		stats.AccountStats.AccountCreated = user.CreatedAt
	}

	totalSessions, err := svc.Sessions.CountAllSessions(userID)
	if err != nil {
		return nil, err
	}
	stats.AccountStats.TotalSessions = totalSessions

	sessions, err := svc.Sessions.GetUserActiveSessions(userID)
	if err == nil {
		for _, s := range sessions {
			if s.LastActivityAt.After(stats.AccountStats.LastActive) {
				stats.AccountStats.LastActive = s.LastActivityAt
			}
		}
	}

	return stats, nil
}
