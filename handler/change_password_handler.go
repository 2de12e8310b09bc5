package handler

import (
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func ChangePasswordHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	userService := &usecase.UserService{
		UsersRepo: repository.GetUserRepo(utils.MongoClient),
	}

	if err := userService.ChangePassword(c.Request.Context(), userID.(string), req.OldPassword, req.NewPassword); err != nil {
		switch err.Error() {
		case "user not found":
			utils.NotFound(c, "User not found")
		case "current password is incorrect":
			utils.Unauthorized(c, "Current password is incorrect")
		case "new password must differ from the current one":
			utils.BadRequest(c, err.Error())
		case "new password does not meet requirements":
			utils.BadRequest(c, err.Error())
		default:
			utils.TrackError("user", "password_change")
			utils.InternalError(c, "Failed to update password")
		}
		return
	}

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}
