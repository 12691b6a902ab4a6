package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestType represents the interaction style of a quest
type QuestType string

const (
	QuestTypeVisualProgramming QuestType = "VISUAL_PROGRAMMING"
	QuestTypeCodeCompletion    QuestType = "CODE_COMPLETION"
	QuestTypeBuildFromScratch  QuestType = "BUILD_FROM_SCRATCH"
	QuestTypeDebugChallenge    QuestType = "DEBUG_CHALLENGE"
	QuestTypeMiniGame          QuestType = "MINI_GAME"
)

// QuestCategory represents the blockchain concept a quest teaches
type QuestCategory string

const (
	CategoryAccounts     QuestCategory = "ACCOUNTS"
	CategoryTransactions QuestCategory = "TRANSACTIONS"
	CategoryPrograms     QuestCategory = "PROGRAMS"
	CategoryPDAs         QuestCategory = "PDAS"
	CategoryTokens       QuestCategory = "TOKENS"
	CategoryNFTs         QuestCategory = "NFTS"
	CategoryDeFi         QuestCategory = "DEFI"
)

// Block describes one draggable code block
type Block struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// QuestContent carries the teaching material of a quest. CorrectOrder and
// Solution are stripped from every read returned to clients.
type QuestContent struct {
	Instructions    string   `json:"instructions"`
	StarterCode     string   `json:"starterCode,omitempty"`
	Solution        string   `json:"-"`
	Hints           []string `json:"hints,omitempty"`
	Concepts        []string `json:"concepts,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	AvailableBlocks []Block  `json:"availableBlocks,omitempty"`
	CorrectOrder    []string `json:"-"`
	Explanation     string   `json:"explanation,omitempty"`
}

// Quest represents a learning challenge
type Quest struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Difficulty       DifficultyLevel `json:"difficulty"`
	Type             QuestType       `json:"type"`
	Category         QuestCategory   `json:"category"`
	ExperienceReward int             `json:"experienceReward"`
	SolReward        float64         `json:"solReward"`
	SortOrder        int             `json:"order"`
	EstimatedTime    int             `json:"estimatedTime"`
	Content          QuestContent    `json:"content"`
	CreatedBy        *uuid.UUID      `json:"createdBy,omitempty"`
	IsOfficial       bool            `json:"isOfficial"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// HasBlockData reports whether the quest can accept block-order submissions
func (q *Quest) HasBlockData() bool {
	return len(q.Content.CorrectOrder) > 0
}

// QuestWithProgress decorates a quest with the requesting user's progress
type QuestWithProgress struct {
	*Quest
	Progress *Progress `json:"progress,omitempty"`
}

// QuestFilter selects which quests to list
type QuestFilter string

const (
	FilterAll       QuestFilter = "all"
	FilterOfficial  QuestFilter = "official"
	FilterCommunity QuestFilter = "community"
)

// CreateQuestInput represents input for creating a community quest
type CreateQuestInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Difficulty      string   `json:"difficulty" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	EstimatedTime   int      `json:"estimatedTime"`
	AvailableBlocks []Block  `json:"availableBlocks" binding:"required"`
	CorrectOrder    []string `json:"correctOrder" binding:"required"`
	Hint            string   `json:"hint"`
	Explanation     string   `json:"explanation"`
}

// SubmitQuestInput represents a block-order submission
type SubmitQuestInput struct {
	BlockOrder []string `json:"blockOrder" binding:"required"`
}

// QuestReward describes what a completed quest pays out
type QuestReward struct {
	Experience int     `json:"experience"`
	Sol        float64 `json:"sol"`
	Score      int     `json:"score"`
}

// SubmitResult is the outcome of a submission
type SubmitResult struct {
	Success     bool         `json:"success"`
	IsCorrect   bool         `json:"isCorrect"`
	Message     string       `json:"message,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	Progress    *Progress    `json:"progress"`
	Rewards     *QuestReward `json:"rewards,omitempty"`
}

// StartResult is the outcome of starting a quest
type StartResult struct {
	AlreadyCompleted bool      `json:"alreadyCompleted"`
	Progress         *Progress `json:"progress"`
}

// HintResult is the outcome of requesting a hint
type HintResult struct {
	Hint      string `json:"hint"`
	HintsUsed int    `json:"hintsUsed"`
}
