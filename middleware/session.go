package middleware

import (
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Inactivity timeout after which a session is ended
const sessionInactivityLimit = 48 * time.Hour

func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > sessionInactivityLimit {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		// Update last activity time
		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(session)

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession records a new login session with device and location info
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) error {
	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	location, err := utils.GetLocationFromIP(ip)
	if err != nil {
		location = ""
	}

	browser, os, device := utils.ParseUserAgent(userAgent)
	now := time.Now()

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent, location),
		CreatedAt:      now,
		ExpiresAt:      now.Add(utils.GetEnvAsDuration("SESSION_DURATION", 7*24*time.Hour)),
		LastActivityAt: now,
		DeviceInfo:     browser + " / " + os + " / " + device,
		IPAddress:      ip,
		Location:       location,
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return err
	}

	log.Printf("Created session %s for user %s", session.SessionID, userID)
	c.SetCookie("session_id", session.SessionID, int(time.Until(session.ExpiresAt).Seconds()), "/", "", true, true)
	return nil
}
