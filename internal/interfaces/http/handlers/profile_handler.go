package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/interfaces/http/middleware"
	"quest-ring.backend/internal/interfaces/http/response"
	"quest-ring.backend/internal/usecases"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// GetProfile returns the caller's profile with stats
// GET /api/profile/me
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetCompletedQuests returns IDs of the caller's completed quests
// GET /api/profile/completed-quests
func (h *ProfileHandler) GetCompletedQuests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	ids, err := h.profileUsecase.GetCompletedQuestIDs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"completedQuestIds": ids})
}

// UpdateUsername sets the caller's display name
// PATCH /api/profile/username
func (h *ProfileHandler) UpdateUsername(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.UpdateUsernameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be between 3 and 20 characters"})
		return
	}

	user, err := h.profileUsecase.UpdateUsername(c.Request.Context(), userID, input.Username)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be between 3 and 20 characters"})
		case errors.Is(err, domainerrors.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user.Public()})
}

// GetBadges returns the caller's badges
// GET /api/profile/badges
func (h *ProfileHandler) GetBadges(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	badges, err := h.profileUsecase.GetBadges(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"badges": badges})
}
