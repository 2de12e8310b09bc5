package handler

import (
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.StatsService
}

func NewStatsHandler(service *usecase.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	stats, err := h.service.GetUserStats(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error assembling stats for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch stats")
		return
	}

	utils.Success(c, stats)
}
