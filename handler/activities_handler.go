package handler

import (
	"strings"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ActivitiesHandler struct {
	service *usecase.ActivitiesService
}

func NewActivitiesHandler(service *usecase.ActivitiesService) *ActivitiesHandler {
	return &ActivitiesHandler{service: service}
}

// GetByDate returns the scheduled activities for one day. An optional
// ?slot= query narrows the result to a single day slot.
func (h *ActivitiesHandler) GetByDate(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	date := c.Param("date")
	if !utils.ValidateDateString(date) {
		utils.BadRequest(c, "Invalid date, expected yyyy-MM-dd")
		return
	}

	activities, err := h.service.GetByDate(c.Request.Context(), userID.(string), date, c.Query("slot"))
	if err != nil {
		if strings.Contains(err.Error(), "unknown day slot") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to fetch activities")
		return
	}

	utils.Success(c, gin.H{"activities": dto.ToActivityResponses(activities)})
}

func (h *ActivitiesHandler) GetInRange(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if !utils.ValidateDateString(from) || !utils.ValidateDateString(to) {
		utils.BadRequest(c, "Invalid range, expected from/to as yyyy-MM-dd")
		return
	}

	activities, err := h.service.GetInRange(c.Request.Context(), userID.(string), from, to)
	if err != nil {
		utils.InternalError(c, "Failed to fetch activities")
		return
	}

	utils.Success(c, gin.H{"activities": dto.ToActivityResponses(activities)})
}

func (h *ActivitiesHandler) CompleteActivity(c *gin.Context) {
	h.setCompleted(c, true)
}

func (h *ActivitiesHandler) UncompleteActivity(c *gin.Context) {
	h.setCompleted(c, false)
}

func (h *ActivitiesHandler) setCompleted(c *gin.Context, completed bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.SetCompleted(c.Request.Context(), c.Param("id"), userID.(string), completed); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to update activity")
		return
	}

	message := "Activity marked complete"
	if !completed {
		message = "Activity marked incomplete"
	}
	utils.Success(c, gin.H{"message": message})
}
