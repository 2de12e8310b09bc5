package handler

import (
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessions, err := sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	currentSessionID, _ := c.Cookie("session_id")

	out := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, gin.H{
			"session_id":       s.SessionID,
			"display_name":     s.DisplayName,
			"device_info":      s.DeviceInfo,
			"location":         s.Location,
			"ip_address":       s.IPAddress,
			"created_at":       s.CreatedAt,
			"last_activity_at": s.LastActivityAt,
			"expires_at":       s.ExpiresAt,
			"is_current":       s.SessionID == currentSessionID,
		})
	}

	utils.Success(c, gin.H{"sessions": out})
}

func LogoutSession(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessionID := c.Param("id")
	session, err := sessionRepo.GetSession(sessionID)
	if err != nil || session == nil || session.UserID != userID.(string) {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := sessionRepo.DeleteSession(sessionID); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}

	if current, _ := c.Cookie("session_id"); current == sessionID {
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func LogoutAllSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		utils.InternalError(c, "Failed to end all sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Successfully logged out of all sessions"})
}
