package handler

import (
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type DeleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeleteUserHandler permanently removes the account and ends every session.
func DeleteUserHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	userRepo := repository.GetUserRepo(utils.MongoClient)
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	ok, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		utils.Unauthorized(c, "Password is incorrect")
		return
	}

	userService := &usecase.UserService{UsersRepo: userRepo}
	if err := userService.DeleteUser(c.Request.Context(), userID.(string)); err != nil {
		utils.TrackError("user", "account_deletion")
		utils.InternalError(c, "Failed to delete account")
		return
	}

	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		utils.TrackError("session", "account_deletion_cleanup")
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Account deleted"})
}
