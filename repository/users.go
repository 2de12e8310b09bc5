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
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for users
func GetUserRepo(client *mongo.Client) *UserRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddUser inserts a new user document
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_creation_failed")
		return err
	}
	return nil
}

// FindUserByUsername looks a user up for login
func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}
	return &user, nil
}

// FindUser fetches a user by ID
func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "user_lookup_failed")
		return nil, err
	}
	return &user, nil
}

// UpdateUserPassword stores a new password hash
func (r *UserRepo) UpdateUserPassword(ctx context.Context, userID, hashedPassword string) (int64, error) {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"password": hashedPassword}})
	if err != nil {
		utils.TrackError("database", "password_update_failed")
		return 0, err
	}
	return result.ModifiedCount, nil
}

// UpdateUserEmail stores a new email address
func (r *UserRepo) UpdateUserEmail(ctx context.Context, userID, email string) (int64, error) {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"email": email}})
	if err != nil {
		utils.TrackError("database", "email_update_failed")
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteUserByID removes the user document
func (r *UserRepo) DeleteUserByID(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "user_delete_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// Enable2FAWithRecoveryCodes turns 2FA on and stores the hashed recovery codes
func (r *UserRepo) Enable2FAWithRecoveryCodes(ctx context.Context, userID, secret string, recoveryCodes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"two_factor_enabled": true,
			"two_factor_secret":  secret,
			"recovery_codes":     recoveryCodes,
		}})
	if err != nil {
		utils.TrackError("database", "2fa_enable_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// UpdateRecoveryCodes replaces the stored recovery codes
func (r *UserRepo) UpdateRecoveryCodes(ctx context.Context, userID string, codes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"recovery_codes": codes}})
	if err != nil {
		utils.TrackError("database", "recovery_codes_update_failed")
		return err
	}
	return nil
}

// Disable2FA clears the secret and recovery codes
func (r *UserRepo) Disable2FA(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"two_factor_enabled": false,
			"two_factor_secret":  "",
			"recovery_codes":     []string{},
		}})
	if err != nil {
		utils.TrackError("database", "2fa_disable_failed")
		return err
	}
	return nil
}

// AccountAge is a convenience for the stats endpoint
func (r *UserRepo) AccountCreatedAt(ctx context.Context, userID string) (time.Time, error) {
	user, err := r.FindUser(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	if user == nil {
		return time.Time{}, errors.New("user not found")
	}
	return user.CreatedAt, nil
}
