package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/interfaces/http/middleware"
	"quest-ring.backend/internal/interfaces/http/response"
	"quest-ring.backend/internal/usecases"
)

// QuestHandler handles quest catalog and lifecycle endpoints
type QuestHandler struct {
	questUsecase *usecases.QuestUsecase
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questUsecase *usecases.QuestUsecase) *QuestHandler {
	return &QuestHandler{
		questUsecase: questUsecase,
	}
}

// CreateQuest creates a community quest
// POST /api/quests
func (h *QuestHandler) CreateQuest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateQuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	quest, err := h.questUsecase.CreateQuest(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"quest":   quest,
		"message": "Quest created successfully!",
	})
}

// ListQuests returns the quest catalog, decorated with progress for
// authenticated callers
// GET /api/quests
func (h *QuestHandler) ListQuests(c *gin.Context) {
	filter := entities.QuestFilter(c.DefaultQuery("filter", string(entities.FilterAll)))

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	quests, err := h.questUsecase.ListQuests(c.Request.Context(), filter, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quests": quests})
}

// GetQuest returns one quest
// GET /api/quests/:questId
func (h *QuestHandler) GetQuest(c *gin.Context) {
	questID, err := uuid.Parse(c.Param("questId"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Quest not found"))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	quest, err := h.questUsecase.GetQuest(c.Request.Context(), questID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Quest not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quest": quest})
}

// StartQuest opens (or reopens) a progress record for the caller
// POST /api/quests/:questId/start
func (h *QuestHandler) StartQuest(c *gin.Context) {
	questID, userID, ok := h.questAndUser(c)
	if !ok {
		return
	}

	result, err := h.questUsecase.StartQuest(c.Request.Context(), questID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.AlreadyCompleted {
		response.Success(c, http.StatusOK, gin.H{
			"message":          "Quest already completed",
			"alreadyCompleted": true,
			"progress":         result.Progress,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{"progress": result.Progress})
}

// SubmitQuest grades a block-order submission
// POST /api/quests/:questId/submit
func (h *QuestHandler) SubmitQuest(c *gin.Context) {
	questID, userID, ok := h.questAndUser(c)
	if !ok {
		return
	}

	var input entities.SubmitQuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Block order is required and must be an array"})
		return
	}

	result, err := h.questUsecase.SubmitQuest(c.Request.Context(), questID, userID, input.BlockOrder)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrQuestCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quest already completed", "alreadyCompleted": true})
		case errors.Is(err, domainerrors.ErrNotBlockQuest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quest does not support block-based submissions"})
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetHint reveals the next hint and counts it against the score
// POST /api/quests/:questId/hint
func (h *QuestHandler) GetHint(c *gin.Context) {
	questID, userID, ok := h.questAndUser(c)
	if !ok {
		return
	}

	result, err := h.questUsecase.GetHint(c.Request.Context(), questID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *QuestHandler) questAndUser(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return uuid.Nil, uuid.Nil, false
	}

	questID, err := uuid.Parse(c.Param("questId"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Quest not found"))
		return uuid.Nil, uuid.Nil, false
	}

	return questID, userID, true
}
