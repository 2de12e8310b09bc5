package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UserRepo
}

// CreateUser registers a new account with a hashed password
func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	if len(user.Username) < 4 || len(user.Username) > 20 {
		return errors.New("username must be between 4 and 20 characters")
	}

	existing, err := svc.UsersRepo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if user.UserID == "" {
		user.UserID = utils.GenerateID()
	}
	user.CreatedAt = time.Now()
	user.TwoFactorEnabled = false

	return svc.UsersRepo.AddUser(ctx, user)
}

func (svc *UserService) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(ctx, username)
}

func (svc *UserService) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash
func (svc *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	ok, err := services.VerifyPassword(user.Password, currentPassword)
	if err != nil || !ok {
		return errors.New("current password is incorrect")
	}

	if currentPassword == newPassword {
		return errors.New("new password must differ from the current one")
	}
	if !utils.ValidatePassword(newPassword) {
		return errors.New("new password does not meet requirements")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}

	modified, err := svc.UsersRepo.UpdateUserPassword(ctx, userID, hashed)
	if err != nil {
		return err
	}
	if modified == 0 {
		return errors.New("password was not updated")
	}
	return nil
}

// ChangeEmail stores a new email address after ownership is confirmed by
// the handler's password check
func (svc *UserService) ChangeEmail(ctx context.Context, userID, email string) error {
	modified, err := svc.UsersRepo.UpdateUserEmail(ctx, userID, email)
	if err != nil {
		return err
	}
	if modified == 0 {
		return errors.New("email was not updated")
	}
	return nil
}

func (svc *UserService) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := svc.UsersRepo.DeleteUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.New("user not found")
	}
	return nil
}
