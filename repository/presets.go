package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PresetsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for presets
func GetPresetsRepo(client *mongo.Client) *PresetsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("PRESETS_COLLECTION", "presets")
	return &PresetsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new preset (following the model) into the database
func (r *PresetsRepo) CreatePreset(ctx context.Context, preset *model.Preset) error {
	timer := utils.TrackDBOperation("insert", "presets")
	defer timer.ObserveDuration()

	if preset.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, preset)
	if err != nil {
		utils.TrackError("database", "preset_creation_failed")
		return err
	}

	return nil
}

// Retrieves all non-archived presets based on the User ID
func (r *PresetsRepo) GetUserPresets(ctx context.Context, userID string) ([]*model.Preset, error) {
	timer := utils.TrackDBOperation("find", "presets")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "is_archived": false},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		utils.TrackError("database", "preset_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var presets []*model.Preset
	if err = cursor.All(ctx, &presets); err != nil {
		utils.TrackError("database", "preset_decode_failed")
		return nil, err
	}
	return presets, nil
}

// Retrieves a specific preset scoped to its owner
func (r *PresetsRepo) GetPresetByID(ctx context.Context, presetID, userID string) (*model.Preset, error) {
	timer := utils.TrackDBOperation("find", "presets")
	defer timer.ObserveDuration()

	var preset model.Preset
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     presetID,
		"user_id": userID,
	}).Decode(&preset)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "preset_fetch_failed")
		return nil, err
	}
	return &preset, nil
}

// All encompassing update for a specific preset (name, emoji, activities)
func (r *PresetsRepo) UpdatePreset(ctx context.Context, presetID, userID string, updates *model.Preset) error {
	timer := utils.TrackDBOperation("update", "presets")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     presetID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":       updates.Name,
			"emoji":      updates.Emoji,
			"activities": updates.Activities,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "preset_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "preset_not_found")
		return errors.New("preset not found")
	}

	return nil
}

// SetActivation persists an activation window on the preset. A
// re-activation overwrites the previous window unconditionally.
func (r *PresetsRepo) SetActivation(ctx context.Context, presetID, userID string, start, end, activatedAt time.Time) error {
	timer := utils.TrackDBOperation("update", "presets")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     presetID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"is_active":         true,
			"last_activated_at": activatedAt,
			"activation_start":  start,
			"activation_end":    end,
			"updated_at":        time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "preset_activation_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "preset_not_found")
		return errors.New("preset not found")
	}
	return nil
}

// ArchivePreset marks a preset archived and inactive; archive is terminal
func (r *PresetsRepo) ArchivePreset(ctx context.Context, presetID, userID string) error {
	timer := utils.TrackDBOperation("update", "presets")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     presetID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"is_archived": true,
			"is_active":   false,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "preset_archive_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "preset_not_found")
		return errors.New("preset not found")
	}
	return nil
}

// Removes a specific preset from database
func (r *PresetsRepo) DeletePreset(ctx context.Context, presetID, userID string) error {
	timer := utils.TrackDBOperation("delete", "presets")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     presetID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "preset_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("preset not found")
	}
	return nil
}

// CountUserPresets returns totals for the stats endpoint
func (r *PresetsRepo) CountUserPresets(ctx context.Context, userID string) (total, active, archived int, err error) {
	timer := utils.TrackDBOperation("count", "presets")
	defer timer.ObserveDuration()

	all, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, 0, 0, err
	}
	activeCount, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID, "is_active": true, "is_archived": false})
	if err != nil {
		return 0, 0, 0, err
	}
	archivedCount, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID, "is_archived": true})
	if err != nil {
		return 0, 0, 0, err
	}
	return int(all), int(activeCount), int(archivedCount), nil
}
