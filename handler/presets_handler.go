package handler

import (
	"strings"
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PresetsHandler struct {
	service *usecase.PresetsService
}

func NewPresetsHandler(service *usecase.PresetsService) *PresetsHandler {
	return &PresetsHandler{service: service}
}

func (h *PresetsHandler) GetUserPresets(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	presets, err := h.service.GetUserPresets(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch presets")
		return
	}

	utils.Success(c, gin.H{"presets": dto.ToPresetResponses(presets)})
}

func (h *PresetsHandler) GetPreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	preset, err := h.service.GetPreset(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch preset")
		return
	}
	if preset == nil {
		utils.NotFound(c, "Preset not found")
		return
	}

	utils.Success(c, dto.ToPresetResponse(preset))
}

func (h *PresetsHandler) CreatePreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name       string                 `json:"name" binding:"required"`
		Emoji      string                 `json:"emoji"`
		Activities []model.PresetActivity `json:"activities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	preset := &model.Preset{
		UserID:     userID.(string),
		Name:       req.Name,
		Emoji:      req.Emoji,
		Activities: req.Activities,
	}

	if err := h.service.CreatePreset(c.Request.Context(), preset); err != nil {
		if strings.Contains(err.Error(), "required") ||
			strings.Contains(err.Error(), "cannot exceed") ||
			strings.Contains(err.Error(), "must be") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToPresetResponse(preset))
}

func (h *PresetsHandler) UpdatePreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name       string                 `json:"name" binding:"required"`
		Emoji      string                 `json:"emoji"`
		Activities []model.PresetActivity `json:"activities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Preset{
		Name:       req.Name,
		Emoji:      req.Emoji,
		Activities: req.Activities,
	}

	if err := h.service.UpdatePreset(c.Request.Context(), c.Param("id"), userID.(string), updates); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFound(c, err.Error())
		case strings.Contains(err.Error(), "archived"):
			utils.Conflict(c, err.Error())
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"message": "Preset updated"})
}

// ActivatePreset expands the submitted recurrence rule from the anchor
// date and materializes the schedule.
func (h *PresetsHandler) ActivatePreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	anchor, err := req.ParseAnchor()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	preset, err := h.service.ActivatePreset(c.Request.Context(), c.Param("id"), userID.(string), anchor, req.Rule, time.Now())
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFound(c, err.Error())
		case strings.Contains(err.Error(), "archived"):
			utils.Conflict(c, err.Error())
		default:
			utils.InternalError(c, "Failed to activate preset")
		}
		return
	}

	utils.Success(c, dto.ToPresetResponse(preset))
}

func (h *PresetsHandler) ArchivePreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.ArchivePreset(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to archive preset")
		return
	}

	utils.Success(c, gin.H{"message": "Preset archived"})
}

func (h *PresetsHandler) DeletePreset(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeletePreset(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete preset")
		return
	}

	utils.Success(c, gin.H{"message": "Preset deleted"})
}
