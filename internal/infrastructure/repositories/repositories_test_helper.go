package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
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
	);`)
}

func createQuestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE quests (
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
	);`)
}

func createProgressTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE progresses (
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
	);`)
}

func createLeaderboardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE leaderboard_entries (
		user_id TEXT PRIMARY KEY,
		username TEXT NOT NULL DEFAULT '',
		wallet_address TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		level TEXT NOT NULL,
		quests_completed INTEGER NOT NULL DEFAULT 0,
		badges_earned INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME
	);`)
}

func createBadgeTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE badges (
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
	);`)
	mustExec(t, db, `CREATE TABLE user_badges (
		user_id TEXT NOT NULL,
		badge_id TEXT NOT NULL,
		awarded_at DATETIME,
		PRIMARY KEY (user_id, badge_id)
	);`)
}
