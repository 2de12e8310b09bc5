package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

const maxEmotions = 10

type EntriesService struct {
	repo *repository.EntriesRepo
}

func NewEntriesService(repo *repository.EntriesRepo) *EntriesService {
	return &EntriesService{repo: repo}
}

// Get the user's journal entries, newest first
func (svc *EntriesService) GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error) {
	return svc.repo.GetUserEntries(ctx, userID, limit)
}

func (svc *EntriesService) GetEntryByDate(ctx context.Context, userID, date string) (*model.JournalEntry, error) {
	if !utils.ValidateDateString(date) {
		return nil, errors.New("date must be yyyy-MM-dd")
	}
	return svc.repo.GetEntryByDate(ctx, userID, date)
}

// GetEntriesInRange feeds the mood/emotion charts
func (svc *EntriesService) GetEntriesInRange(ctx context.Context, userID, from, to string) ([]*model.JournalEntry, error) {
	if !utils.ValidateDateString(from) || !utils.ValidateDateString(to) {
		return nil, errors.New("range bounds must be yyyy-MM-dd")
	}
	if from > to {
		return nil, errors.New("range start must not be after range end")
	}
	return svc.repo.GetEntriesInRange(ctx, userID, from, to)
}

// Create journal entry; a user gets one entry per calendar day
func (svc *EntriesService) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	if entry.UserID == "" {
		return errors.New("user ID is required")
	}
	if !utils.ValidateDateString(entry.Date) {
		return errors.New("date must be yyyy-MM-dd")
	}
	if err := validateMoodScales(entry); err != nil {
		return err
	}

	existing, err := svc.repo.GetEntryByDate(ctx, entry.UserID, entry.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("entry already exists for this date")
	}

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.EntryID == "" {
		entry.EntryID = uuid.New().String()
	}

	if err := svc.repo.CreateEntry(ctx, entry); err != nil {
		return err
	}
	utils.TrackJournalOperation("create")
	return nil
}

func (svc *EntriesService) UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error {
	if err := validateMoodScales(updates); err != nil {
		return err
	}
	if err := svc.repo.UpdateEntry(ctx, entryID, userID, updates); err != nil {
		return err
	}
	utils.TrackJournalOperation("update")
	return nil
}

func (svc *EntriesService) DeleteEntry(ctx context.Context, entryID, userID string) error {
	if err := svc.repo.DeleteEntry(ctx, entryID, userID); err != nil {
		return err
	}
	utils.TrackJournalOperation("delete")
	return nil
}

func validateMoodScales(entry *model.JournalEntry) error {
	if entry.Mood < 1 || entry.Mood > 5 {
		return errors.New("mood must be between 1 and 5")
	}
	if entry.Energy != 0 && (entry.Energy < 1 || entry.Energy > 5) {
		return errors.New("energy must be between 1 and 5")
	}
	if len(entry.Emotions) > maxEmotions {
		return errors.New("cannot record more than 10 emotions")
	}
	return nil
}
