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

type EntriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for journal entries
func GetEntriesRepo(client *mongo.Client) *EntriesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("ENTRIES_COLLECTION", "entries")
	return &EntriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new journal entry into the database
func (r *EntriesRepo) CreateEntry(ctx context.Context, entry *model.JournalEntry) error {
	timer := utils.TrackDBOperation("insert", "entries")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	if err != nil {
		utils.TrackError("database", "entry_creation_failed")
		return err
	}
	return nil
}

// Retrieves all entries for a user, newest first
func (r *EntriesRepo) GetUserEntries(ctx context.Context, userID string, limit int64) ([]*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find", "entries")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.JournalEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// Retrieves the entry for a specific calendar day, if any
func (r *EntriesRepo) GetEntryByDate(ctx context.Context, userID, date string) (*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find", "entries")
	defer timer.ObserveDuration()

	var entry model.JournalEntry
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    date,
	}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	return &entry, nil
}

// Retrieves entries inside a date range (inclusive), for mood charts
func (r *EntriesRepo) GetEntriesInRange(ctx context.Context, userID, from, to string) ([]*model.JournalEntry, error) {
	timer := utils.TrackDBOperation("find", "entries")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": from, "$lte": to},
		},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		utils.TrackError("database", "entry_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.JournalEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "entry_decode_failed")
		return nil, err
	}
	return entries, nil
}

// Update an entry's mood, energy, emotions and note
func (r *EntriesRepo) UpdateEntry(ctx context.Context, entryID, userID string, updates *model.JournalEntry) error {
	timer := utils.TrackDBOperation("update", "entries")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     entryID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"mood":       updates.Mood,
			"energy":     updates.Energy,
			"emotions":   updates.Emotions,
			"note":       updates.Note,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "entry_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "entry_not_found")
		return errors.New("entry not found")
	}
	return nil
}

// Removes a specific entry from database
func (r *EntriesRepo) DeleteEntry(ctx context.Context, entryID, userID string) error {
	timer := utils.TrackDBOperation("delete", "entries")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     entryID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "entry_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("entry not found")
	}
	return nil
}
