package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"main/model"
)

type fakePresetWriter struct {
	presets     map[string]*model.Preset
	activations []activationCall
}

type activationCall struct {
	presetID           string
	start, end, atTime time.Time
}

func newFakePresetWriter() *fakePresetWriter {
	return &fakePresetWriter{presets: make(map[string]*model.Preset)}
}

func (f *fakePresetWriter) CreatePreset(_ context.Context, preset *model.Preset) error {
	f.presets[preset.PresetID] = preset
	return nil
}

func (f *fakePresetWriter) GetUserPresets(_ context.Context, userID string) ([]*model.Preset, error) {
	var out []*model.Preset
	for _, p := range f.presets {
		if p.UserID == userID && !p.IsArchived {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePresetWriter) GetPresetByID(_ context.Context, presetID, userID string) (*model.Preset, error) {
	p, ok := f.presets[presetID]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePresetWriter) UpdatePreset(_ context.Context, presetID, userID string, updates *model.Preset) error {
	p := f.presets[presetID]
	p.Name = updates.Name
	p.Emoji = updates.Emoji
	p.Activities = updates.Activities
	return nil
}

func (f *fakePresetWriter) SetActivation(_ context.Context, presetID, userID string, start, end, activatedAt time.Time) error {
	f.activations = append(f.activations, activationCall{presetID, start, end, activatedAt})
	p := f.presets[presetID]
	p.IsActive = true
	p.ActivationStart = start
	p.ActivationEnd = end
	p.LastActivatedAt = activatedAt
	return nil
}

func (f *fakePresetWriter) ArchivePreset(_ context.Context, presetID, userID string) error {
	f.presets[presetID].IsArchived = true
	return nil
}

func (f *fakePresetWriter) DeletePreset(_ context.Context, presetID, userID string) error {
	delete(f.presets, presetID)
	return nil
}

type fakeActivityWriter struct {
	inserted       []*model.ScheduledActivity
	pendingDeletes []string
}

func (f *fakeActivityWriter) InsertBatch(_ context.Context, activities []*model.ScheduledActivity) error {
	f.inserted = append(f.inserted, activities...)
	return nil
}

func (f *fakeActivityWriter) DeletePendingForPreset(_ context.Context, presetID, userID string) error {
	f.pendingDeletes = append(f.pendingDeletes, presetID)
	return nil
}

func intPtr(v int) *int { return &v }

func seedPreset(presets *fakePresetWriter, id, userID string, activities []model.PresetActivity) *model.Preset {
	p := &model.Preset{
		PresetID:   id,
		UserID:     userID,
		Name:       "Morning routine",
		Activities: activities,
	}
	presets.presets[id] = p
	return p
}

func TestActivatePresetMaterializesSchedule(t *testing.T) {
	presets := newFakePresetWriter()
	activities := &fakeActivityWriter{}
	svc := NewPresetsServiceWith(presets, activities)

	seedPreset(presets, "p1", "u1", []model.PresetActivity{
		{TemplateID: "stretch", Category: "exercise", StartTime: "07:30", DaySlot: "early_morning"},
		{TemplateID: "journal", Category: "mindfulness", DaySlot: "anytime"},
	})

	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)
	rule := model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(3)}

	updated, err := svc.ActivatePreset(context.Background(), "p1", "u1", anchor, rule, now)
	if err != nil {
		t.Fatalf("ActivatePreset: %v", err)
	}

	// 3 occurrences x 2 activities
	if len(activities.inserted) != 6 {
		t.Fatalf("inserted %d instances, want 6", len(activities.inserted))
	}
	if got := activities.inserted[0].Date; got != "2024-06-01" {
		t.Errorf("first instance date = %q, want 2024-06-01", got)
	}
	if got := activities.inserted[5].Date; got != "2024-06-03" {
		t.Errorf("last instance date = %q, want 2024-06-03", got)
	}
	for _, inst := range activities.inserted {
		if inst.Completed {
			t.Errorf("instance %s created as completed", inst.ActivityID)
		}
		if inst.ActivityID == "" {
			t.Error("instance created without an ID")
		}
		if inst.PresetID != "p1" || inst.UserID != "u1" {
			t.Errorf("instance has wrong ownership: %s/%s", inst.PresetID, inst.UserID)
		}
	}

	if len(activities.pendingDeletes) != 1 || activities.pendingDeletes[0] != "p1" {
		t.Errorf("pending instances were not cleared: %v", activities.pendingDeletes)
	}

	if !updated.IsActive {
		t.Error("preset not marked active")
	}
	if !updated.LastActivatedAt.Equal(now) {
		t.Errorf("last_activated_at = %v, want %v", updated.LastActivatedAt, now)
	}
	wantEnd := anchor.AddDate(0, 0, 2)
	if !updated.ActivationStart.Equal(anchor) || !updated.ActivationEnd.Equal(wantEnd) {
		t.Errorf("activation window = [%v, %v], want [%v, %v]",
			updated.ActivationStart, updated.ActivationEnd, anchor, wantEnd)
	}
}

func TestActivatePresetLastActivationWins(t *testing.T) {
	presets := newFakePresetWriter()
	activities := &fakeActivityWriter{}
	svc := NewPresetsServiceWith(presets, activities)

	seedPreset(presets, "p1", "u1", []model.PresetActivity{
		{TemplateID: "walk", Category: "exercise", DaySlot: "anytime"},
	})

	anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	if _, err := svc.ActivatePreset(context.Background(), "p1", "u1", anchor,
		model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(10)}, now); err != nil {
		t.Fatalf("first activation: %v", err)
	}

	later := now.Add(time.Hour)
	updated, err := svc.ActivatePreset(context.Background(), "p1", "u1", anchor,
		model.RecurrenceRule{Type: model.RecurrenceDaily, Count: intPtr(2)}, later)
	if err != nil {
		t.Fatalf("second activation: %v", err)
	}

	// Second activation replaces the first window outright
	wantEnd := anchor.AddDate(0, 0, 1)
	if !updated.ActivationEnd.Equal(wantEnd) {
		t.Errorf("activation end = %v, want %v", updated.ActivationEnd, wantEnd)
	}
	if len(activities.pendingDeletes) != 2 {
		t.Errorf("pending deletes = %d, want one per activation", len(activities.pendingDeletes))
	}
	if !updated.LastActivatedAt.Equal(later) {
		t.Errorf("last_activated_at = %v, want %v", updated.LastActivatedAt, later)
	}
}

func TestActivatePresetRejectsArchived(t *testing.T) {
	presets := newFakePresetWriter()
	activities := &fakeActivityWriter{}
	svc := NewPresetsServiceWith(presets, activities)

	p := seedPreset(presets, "p1", "u1", nil)
	p.IsArchived = true

	_, err := svc.ActivatePreset(context.Background(), "p1", "u1",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		model.RecurrenceRule{Type: model.RecurrenceDaily}, time.Now())
	if err == nil || !strings.Contains(err.Error(), "archived") {
		t.Fatalf("expected archived rejection, got %v", err)
	}
	if len(activities.inserted) != 0 {
		t.Error("instances were created for an archived preset")
	}
}

func TestActivatePresetNotFound(t *testing.T) {
	svc := NewPresetsServiceWith(newFakePresetWriter(), &fakeActivityWriter{})

	_, err := svc.ActivatePreset(context.Background(), "missing", "u1",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		model.RecurrenceRule{Type: model.RecurrenceDaily}, time.Now())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreatePresetValidation(t *testing.T) {
	tests := []struct {
		name    string
		preset  model.Preset
		wantErr string
	}{
		{
			name:    "missing name",
			preset:  model.Preset{UserID: "u1"},
			wantErr: "preset name is required",
		},
		{
			name: "missing template ID",
			preset: model.Preset{
				UserID: "u1", Name: "x",
				Activities: []model.PresetActivity{{Category: "rest"}},
			},
			wantErr: "template ID is required",
		},
		{
			name: "malformed start time",
			preset: model.Preset{
				UserID: "u1", Name: "x",
				Activities: []model.PresetActivity{{TemplateID: "t", StartTime: "7am"}},
			},
			wantErr: "must be HH:MM",
		},
		{
			name: "negative duration",
			preset: model.Preset{
				UserID: "u1", Name: "x",
				Activities: []model.PresetActivity{{TemplateID: "t", Duration: -5}},
			},
			wantErr: "cannot be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewPresetsServiceWith(newFakePresetWriter(), &fakeActivityWriter{})
			p := tc.preset
			err := svc.CreatePreset(context.Background(), &p)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("CreatePreset error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestCreatePresetTooManyActivities(t *testing.T) {
	svc := NewPresetsServiceWith(newFakePresetWriter(), &fakeActivityWriter{})

	acts := make([]model.PresetActivity, 21)
	for i := range acts {
		acts[i] = model.PresetActivity{TemplateID: "t"}
	}
	err := svc.CreatePreset(context.Background(), &model.Preset{UserID: "u1", Name: "big", Activities: acts})
	if err == nil || !strings.Contains(err.Error(), "cannot exceed") {
		t.Fatalf("expected activity cap error, got %v", err)
	}
}

func TestCreatePresetDerivesDaySlot(t *testing.T) {
	presets := newFakePresetWriter()
	svc := NewPresetsServiceWith(presets, &fakeActivityWriter{})

	p := &model.Preset{
		UserID: "u1",
		Name:   "evening",
		Activities: []model.PresetActivity{
			{TemplateID: "read", StartTime: "20:00"},
			{TemplateID: "reflect"},
		},
	}
	if err := svc.CreatePreset(context.Background(), p); err != nil {
		t.Fatalf("CreatePreset: %v", err)
	}

	stored := presets.presets[p.PresetID]
	if got := stored.Activities[0].DaySlot; got != "evening" {
		t.Errorf("slot for 20:00 = %q, want evening", got)
	}
	if got := stored.Activities[1].DaySlot; got != "anytime" {
		t.Errorf("slot for empty time = %q, want anytime", got)
	}
	if stored.IsActive {
		t.Error("new preset should start inactive")
	}
}

func TestDeletePresetClearsPendingInstances(t *testing.T) {
	presets := newFakePresetWriter()
	activities := &fakeActivityWriter{}
	svc := NewPresetsServiceWith(presets, activities)

	seedPreset(presets, "p1", "u1", nil)

	if err := svc.DeletePreset(context.Background(), "p1", "u1"); err != nil {
		t.Fatalf("DeletePreset: %v", err)
	}
	if len(activities.pendingDeletes) != 1 {
		t.Error("pending instances were not removed with the preset")
	}
	if _, ok := presets.presets["p1"]; ok {
		t.Error("preset still present after delete")
	}
}

func TestArchivePreset(t *testing.T) {
	presets := newFakePresetWriter()
	svc := NewPresetsServiceWith(presets, &fakeActivityWriter{})

	seedPreset(presets, "p1", "u1", nil)

	if err := svc.ArchivePreset(context.Background(), "p1", "u1"); err != nil {
		t.Fatalf("ArchivePreset: %v", err)
	}
	if !presets.presets["p1"].IsArchived {
		t.Error("preset not archived")
	}

	if err := svc.ArchivePreset(context.Background(), "missing", "u1"); err == nil {
		t.Error("expected error archiving unknown preset")
	}
}

func TestCreatePresetDefaultsStartTimeFromSlot(t *testing.T) {
	presets := newFakePresetWriter()
	svc := NewPresetsServiceWith(presets, &fakeActivityWriter{})

	p := &model.Preset{
		UserID: "u1",
		Name:   "afternoon",
		Activities: []model.PresetActivity{
			{TemplateID: "nap", DaySlot: "afternoon"},
		},
	}
	if err := svc.CreatePreset(context.Background(), p); err != nil {
		t.Fatalf("CreatePreset: %v", err)
	}

	if got := presets.presets[p.PresetID].Activities[0].StartTime; got != "14:00" {
		t.Errorf("default start time = %q, want 14:00", got)
	}
}

func TestCreatePresetRejectsUnknownSlot(t *testing.T) {
	svc := NewPresetsServiceWith(newFakePresetWriter(), &fakeActivityWriter{})

	err := svc.CreatePreset(context.Background(), &model.Preset{
		UserID: "u1",
		Name:   "x",
		Activities: []model.PresetActivity{
			{TemplateID: "t", DaySlot: "brunch"},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown day slot") {
		t.Fatalf("expected unknown slot error, got %v", err)
	}
}
