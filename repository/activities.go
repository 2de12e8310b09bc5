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

type ActivitiesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for scheduled activities
func GetActivitiesRepo(client *mongo.Client) *ActivitiesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("ACTIVITIES_COLLECTION", "scheduled_activities")
	return &ActivitiesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// InsertBatch writes all materialized instances of a preset activation
// in one call.
func (r *ActivitiesRepo) InsertBatch(ctx context.Context, activities []*model.ScheduledActivity) error {
	timer := utils.TrackDBOperation("insert", "scheduled_activities")
	defer timer.ObserveDuration()

	if len(activities) == 0 {
		return nil
	}

	docs := make([]interface{}, len(activities))
	for i, a := range activities {
		docs[i] = a
	}

	_, err := r.MongoCollection.InsertMany(ctx, docs)
	if err != nil {
		utils.TrackError("database", "activity_batch_insert_failed")
		return err
	}
	return nil
}

// DeletePendingForPreset clears the uncompleted instances of a previous
// activation; completed history is kept.
func (r *ActivitiesRepo) DeletePendingForPreset(ctx context.Context, presetID, userID string) error {
	timer := utils.TrackDBOperation("delete", "scheduled_activities")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"preset_id": presetID,
		"user_id":   userID,
		"completed": false,
	})
	if err != nil {
		utils.TrackError("database", "activity_cleanup_failed")
		return err
	}
	return nil
}

// Retrieves the activities scheduled for one calendar day
func (r *ActivitiesRepo) GetByDate(ctx context.Context, userID, date string) ([]*model.ScheduledActivity, error) {
	timer := utils.TrackDBOperation("find", "scheduled_activities")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "date": date},
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		utils.TrackError("database", "activity_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*model.ScheduledActivity
	if err = cursor.All(ctx, &activities); err != nil {
		utils.TrackError("database", "activity_decode_failed")
		return nil, err
	}
	return activities, nil
}

// Retrieves activities inside a date range (inclusive)
func (r *ActivitiesRepo) GetInRange(ctx context.Context, userID, from, to string) ([]*model.ScheduledActivity, error) {
	timer := utils.TrackDBOperation("find", "scheduled_activities")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": from, "$lte": to},
		},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}))
	if err != nil {
		utils.TrackError("database", "activity_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*model.ScheduledActivity
	if err = cursor.All(ctx, &activities); err != nil {
		utils.TrackError("database", "activity_decode_failed")
		return nil, err
	}
	return activities, nil
}

// SetCompleted toggles completion state on a single scheduled instance
func (r *ActivitiesRepo) SetCompleted(ctx context.Context, activityID, userID string, completed bool) error {
	timer := utils.TrackDBOperation("update", "scheduled_activities")
	defer timer.ObserveDuration()

	set := bson.M{"completed": completed}
	if completed {
		set["completed_at"] = time.Now()
	} else {
		set["completed_at"] = time.Time{}
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": activityID, "user_id": userID},
		bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "activity_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "activity_not_found")
		return errors.New("scheduled activity not found")
	}
	return nil
}

// CountByCompletion returns scheduled/completed totals for stats
func (r *ActivitiesRepo) CountByCompletion(ctx context.Context, userID string) (scheduled, completed int, err error) {
	timer := utils.TrackDBOperation("count", "scheduled_activities")
	defer timer.ObserveDuration()

	all, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, 0, err
	}
	done, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID, "completed": true})
	if err != nil {
		return 0, 0, err
	}
	return int(all), int(done), nil
}

// SlotDistribution counts scheduled activities per day-part
func (r *ActivitiesRepo) SlotDistribution(ctx context.Context, userID string) (map[string]int, error) {
	timer := utils.TrackDBOperation("aggregate", "scheduled_activities")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": "$day_slot", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		utils.TrackError("database", "activity_aggregate_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Slot  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	distribution := make(map[string]int, len(rows))
	for _, row := range rows {
		distribution[row.Slot] = row.Count
	}
	return distribution, nil
}
