package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/interfaces/http/middleware"
	"quest-ring.backend/internal/interfaces/http/response"
	"quest-ring.backend/internal/usecases"
)

// LeaderboardHandler handles ranking endpoints
type LeaderboardHandler struct {
	leaderboardUsecase *usecases.LeaderboardUsecase
	defaultLimit       int
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardUsecase *usecases.LeaderboardUsecase, defaultLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUsecase: leaderboardUsecase,
		defaultLimit:       defaultLimit,
	}
}

// GetLeaderboard returns the global ranking
// GET /api/leaderboard
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	leaderboard, err := h.leaderboardUsecase.GetGlobalLeaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaderboard": leaderboard})
}

// GetUserRank returns the caller's rank
// GET /api/leaderboard/my-rank
func (h *LeaderboardHandler) GetUserRank(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	rank, err := h.leaderboardUsecase.GetUserRank(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rank)
}

// UpdateLeaderboard rebuilds the ranking table on demand
// POST /api/leaderboard/update
func (h *LeaderboardHandler) UpdateLeaderboard(c *gin.Context) {
	if err := h.leaderboardUsecase.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Leaderboard updated",
	})
}
