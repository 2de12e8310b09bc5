package handler

import (
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ChangeEmailRequest struct {
	Password string `json:"password" binding:"required"`
	NewEmail string `json:"new_email" binding:"required,email"`
}

func ChangeEmailHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req ChangeEmailRequest
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

	if user.Email == req.NewEmail {
		utils.BadRequest(c, "New email must differ from the current one")
		return
	}

	userService := &usecase.UserService{UsersRepo: userRepo}
	if err := userService.ChangeEmail(c.Request.Context(), userID.(string), req.NewEmail); err != nil {
		utils.TrackError("user", "email_change")
		utils.InternalError(c, "Failed to update email")
		return
	}

	utils.Success(c, gin.H{"message": "Email updated successfully"})
}
