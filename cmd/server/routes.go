package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quest-ring.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	questHandler       *handlers.QuestHandler
	leaderboardHandler *handlers.LeaderboardHandler
	profileHandler     *handlers.ProfileHandler
	authMiddleware     gin.HandlerFunc
	optionalAuth       gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/nonce", d.authHandler.GenerateNonce)
			auth.POST("/verify", d.authHandler.VerifySignature)
			auth.POST("/authenticate", d.authHandler.Authenticate)
			auth.GET("/nonce/:walletAddress", d.authHandler.GetLegacyNonce)
		}

		// Quest routes (public reads, protected lifecycle)
		quests := api.Group("/quests")
		{
			quests.POST("", d.authMiddleware, d.questHandler.CreateQuest)
			quests.GET("", d.optionalAuth, d.questHandler.ListQuests)
			quests.GET("/:questId", d.optionalAuth, d.questHandler.GetQuest)
			quests.POST("/:questId/start", d.authMiddleware, d.questHandler.StartQuest)
			quests.POST("/:questId/submit", d.authMiddleware, d.questHandler.SubmitQuest)
			quests.POST("/:questId/hint", d.authMiddleware, d.questHandler.GetHint)
		}

		// Leaderboard routes
		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("", d.leaderboardHandler.GetLeaderboard)
			leaderboard.GET("/my-rank", d.authMiddleware, d.leaderboardHandler.GetUserRank)
			leaderboard.POST("/update", d.leaderboardHandler.UpdateLeaderboard)
		}

		// Profile routes (all protected)
		profile := api.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("/me", d.profileHandler.GetProfile)
			profile.GET("/completed-quests", d.profileHandler.GetCompletedQuests)
			profile.PATCH("/username", d.profileHandler.UpdateUsername)
			profile.GET("/badges", d.profileHandler.GetBadges)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
