package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quest-ring.backend/internal/infrastructure/repositories"
	"quest-ring.backend/internal/interfaces/http/middleware"
	"quest-ring.backend/internal/usecases"
	"quest-ring.backend/pkg/jwt"
)

// testEnv wires real usecases over an in-memory database, mirroring the
// production route layout.
type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwt.Service
	questRepo  *repositories.QuestRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	createTables(t, db)

	jwtService := jwt.NewService("handler-test-secret", time.Hour)

	userRepo := repositories.NewUserRepository(db)
	questRepo := repositories.NewQuestRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, 10)
	questUsecase := usecases.NewQuestUsecase(questRepo, progressRepo, userRepo)
	leaderboardUsecase := usecases.NewLeaderboardUsecase(leaderboardRepo, userRepo, progressRepo, badgeRepo, nil, 100)
	profileUsecase := usecases.NewProfileUsecase(userRepo, progressRepo, badgeRepo)

	authHandler := NewAuthHandler(authUsecase)
	questHandler := NewQuestHandler(questUsecase)
	leaderboardHandler := NewLeaderboardHandler(leaderboardUsecase, 100)
	profileHandler := NewProfileHandler(profileUsecase)

	authRequired := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/nonce", authHandler.GenerateNonce)
	auth.POST("/verify", authHandler.VerifySignature)
	auth.POST("/authenticate", authHandler.Authenticate)
	auth.GET("/nonce/:walletAddress", authHandler.GetLegacyNonce)

	quests := api.Group("/quests")
	quests.POST("", authRequired, questHandler.CreateQuest)
	quests.GET("", optionalAuth, questHandler.ListQuests)
	quests.GET("/:questId", optionalAuth, questHandler.GetQuest)
	quests.POST("/:questId/start", authRequired, questHandler.StartQuest)
	quests.POST("/:questId/submit", authRequired, questHandler.SubmitQuest)
	quests.POST("/:questId/hint", authRequired, questHandler.GetHint)

	leaderboard := api.Group("/leaderboard")
	leaderboard.GET("", leaderboardHandler.GetLeaderboard)
	leaderboard.GET("/my-rank", authRequired, leaderboardHandler.GetUserRank)
	leaderboard.POST("/update", leaderboardHandler.UpdateLeaderboard)

	profile := api.Group("/profile")
	profile.Use(authRequired)
	profile.GET("/me", profileHandler.GetProfile)
	profile.GET("/completed-quests", profileHandler.GetCompletedQuests)
	profile.PATCH("/username", profileHandler.UpdateUsername)
	profile.GET("/badges", profileHandler.GetBadges)

	return &testEnv{
		router:     r,
		db:         db,
		jwtService: jwtService,
		questRepo:  questRepo,
	}
}

func createTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			wallet_address TEXT NOT NULL UNIQUE,
			username TEXT UNIQUE,
			current_level TEXT NOT NULL DEFAULT 'NOVICE',
			experience INTEGER NOT NULL DEFAULT 0,
			play_sol_balance REAL NOT NULL DEFAULT 0,
			devnet_wallet_address TEXT,
			total_score INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			last_streak_date DATETIME,
			joined_at DATETIME,
			last_active DATETIME
		);`,
		`CREATE TABLE quests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			experience_reward INTEGER NOT NULL,
			sol_reward REAL NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL,
			estimated_time INTEGER NOT NULL,
			instructions TEXT,
			starter_code TEXT,
			solution TEXT,
			hints TEXT,
			concepts TEXT,
			video_url TEXT,
			available_blocks TEXT,
			correct_order TEXT,
			explanation TEXT,
			created_by TEXT,
			is_official BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE progresses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			quest_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'NOT_STARTED',
			attempts INTEGER NOT NULL DEFAULT 0,
			hints_used INTEGER NOT NULL DEFAULT 0,
			time_spent INTEGER NOT NULL DEFAULT 0,
			code TEXT,
			score INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME,
			completed_at DATETIME,
			updated_at DATETIME,
			UNIQUE(user_id, quest_id)
		);`,
		`CREATE TABLE leaderboard_entries (
			user_id TEXT PRIMARY KEY,
			username TEXT NOT NULL DEFAULT '',
			wallet_address TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			level TEXT NOT NULL,
			quests_completed INTEGER NOT NULL DEFAULT 0,
			badges_earned INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME
		);`,
		`CREATE TABLE badges (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			requirement TEXT NOT NULL,
			rarity TEXT NOT NULL DEFAULT 'COMMON',
			mint_address TEXT,
			image_uri TEXT,
			attributes TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE user_badges (
			user_id TEXT NOT NULL,
			badge_id TEXT NOT NULL,
			awarded_at DATETIME,
			PRIMARY KEY (user_id, badge_id)
		);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body=%s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body=%s", w.Body.String())
}
