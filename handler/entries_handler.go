package handler

import (
	"strconv"
	"strings"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type EntriesHandler struct {
	service *usecase.EntriesService
}

func NewEntriesHandler(service *usecase.EntriesService) *EntriesHandler {
	return &EntriesHandler{service: service}
}

func (h *EntriesHandler) GetUserEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "30"), 10, 64)
	if limit < 0 {
		limit = 0
	}

	entries, err := h.service.GetUserEntries(c.Request.Context(), userID.(string), limit)
	if err != nil {
		utils.InternalError(c, "Failed to fetch entries")
		return
	}

	utils.Success(c, gin.H{"entries": dto.ToEntryResponses(entries)})
}

func (h *EntriesHandler) GetEntryByDate(c *gin.Context) {
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

	entry, err := h.service.GetEntryByDate(c.Request.Context(), userID.(string), date)
	if err != nil {
		utils.InternalError(c, "Failed to fetch entry")
		return
	}
	if entry == nil {
		utils.NotFound(c, "No entry for this date")
		return
	}

	utils.Success(c, dto.ToEntryResponse(entry))
}

// GetMoodSeries returns mood and energy points over a date range, for charts.
func (h *EntriesHandler) GetMoodSeries(c *gin.Context) {
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

	entries, err := h.service.GetEntriesInRange(c.Request.Context(), userID.(string), from, to)
	if err != nil {
		utils.InternalError(c, "Failed to fetch entries")
		return
	}

	utils.Success(c, gin.H{"series": dto.ToMoodSeries(entries)})
}

func (h *EntriesHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Date     string   `json:"date" binding:"required"`
		Mood     int      `json:"mood" binding:"required"`
		Energy   int      `json:"energy"`
		Emotions []string `json:"emotions"`
		Note     string   `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry := &model.JournalEntry{
		UserID:   userID.(string),
		Date:     req.Date,
		Mood:     req.Mood,
		Energy:   req.Energy,
		Emotions: req.Emotions,
		Note:     req.Note,
	}

	if err := h.service.CreateEntry(c.Request.Context(), entry); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.Conflict(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, dto.ToEntryResponse(entry))
}

func (h *EntriesHandler) UpdateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Mood     int      `json:"mood" binding:"required"`
		Energy   int      `json:"energy"`
		Emotions []string `json:"emotions"`
		Note     string   `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.JournalEntry{
		Mood:     req.Mood,
		Energy:   req.Energy,
		Emotions: req.Emotions,
		Note:     req.Note,
	}

	if err := h.service.UpdateEntry(c.Request.Context(), c.Param("id"), userID.(string), updates); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Entry updated"})
}

func (h *EntriesHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete entry")
		return
	}

	utils.Success(c, gin.H{"message": "Entry deleted"})
}
