package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/domain/repositories"
)

// Scoring constants. Every attempt (the successful one included) costs 10
// off the base score, every hint 5, floored at 50.
const (
	baseScore       = 100
	attemptPenalty  = 10
	hintPenalty     = 5
	minimumScore    = 50
	communityOrder  = 999
	defaultEstimate = 10
)

// difficultyRewards maps quest difficulty to completion payouts
var difficultyRewards = map[entities.DifficultyLevel]entities.QuestReward{
	entities.DifficultyNovice:   {Experience: 50, Sol: 0.001},
	entities.DifficultyExplorer: {Experience: 100, Sol: 0.002},
	entities.DifficultyBuilder:  {Experience: 200, Sol: 0.005},
	entities.DifficultyMaster:   {Experience: 400, Sol: 0.01},
}

// QuestUsecase handles the quest catalog and the start/submit/hint lifecycle
type QuestUsecase struct {
	questRepo    repositories.QuestRepository
	progressRepo repositories.ProgressRepository
	userRepo     repositories.UserRepository
}

// NewQuestUsecase creates a new quest usecase
func NewQuestUsecase(
	questRepo repositories.QuestRepository,
	progressRepo repositories.ProgressRepository,
	userRepo repositories.UserRepository,
) *QuestUsecase {
	return &QuestUsecase{
		questRepo:    questRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

// CreateQuest creates a community quest. Rewards are derived from the
// difficulty, never taken from the client.
func (u *QuestUsecase) CreateQuest(ctx context.Context, userID uuid.UUID, input *entities.CreateQuestInput) (*entities.Quest, error) {
	difficulty := entities.DifficultyLevel(input.Difficulty)
	rewards, ok := difficultyRewards[difficulty]
	if !ok {
		difficulty = entities.DifficultyNovice
		rewards = difficultyRewards[entities.DifficultyNovice]
	}

	estimatedTime := input.EstimatedTime
	if estimatedTime <= 0 {
		estimatedTime = defaultEstimate
	}

	hint := input.Hint
	if hint == "" {
		hint = "Think about the logical flow of operations"
	}
	explanation := input.Explanation
	if explanation == "" {
		explanation = "Great job completing this quest!"
	}

	now := time.Now()
	quest := &entities.Quest{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		Difficulty:       difficulty,
		Type:             entities.QuestTypeVisualProgramming,
		Category:         entities.QuestCategory(input.Category),
		ExperienceReward: rewards.Experience,
		SolReward:        rewards.Sol,
		SortOrder:        communityOrder,
		EstimatedTime:    estimatedTime,
		Content: entities.QuestContent{
			Instructions:    "Complete this community quest by arranging the blocks in the correct order.",
			Hints:           []string{hint},
			Concepts:        []string{"Solana", "Blockchain", "Visual Programming"},
			AvailableBlocks: input.AvailableBlocks,
			CorrectOrder:    input.CorrectOrder,
			Explanation:     explanation,
		},
		CreatedBy:  &userID,
		IsOfficial: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.questRepo.Create(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// ListQuests returns the catalog, optionally annotated with the requesting
// user's progress when userID is non-nil.
func (u *QuestUsecase) ListQuests(ctx context.Context, filter entities.QuestFilter, userID *uuid.UUID) ([]*entities.QuestWithProgress, error) {
	quests, err := u.questRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var progressByQuest map[uuid.UUID]*entities.Progress
	if userID != nil {
		records, err := u.progressRepo.ListByUser(ctx, *userID)
		if err != nil {
			return nil, err
		}
		progressByQuest = make(map[uuid.UUID]*entities.Progress, len(records))
		for _, p := range records {
			progressByQuest[p.QuestID] = p
		}
	}

	result := make([]*entities.QuestWithProgress, 0, len(quests))
	for _, q := range quests {
		item := &entities.QuestWithProgress{Quest: q}
		if progressByQuest != nil {
			item.Progress = progressByQuest[q.ID]
		}
		result = append(result, item)
	}
	return result, nil
}

// GetQuest returns one quest, optionally with the user's progress
func (u *QuestUsecase) GetQuest(ctx context.Context, questID uuid.UUID, userID *uuid.UUID) (*entities.QuestWithProgress, error) {
	quest, err := u.questRepo.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}

	item := &entities.QuestWithProgress{Quest: quest}
	if userID != nil {
		progress, err := u.progressRepo.GetByUserAndQuest(ctx, *userID, questID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		item.Progress = progress
	}
	return item, nil
}

// StartQuest opens (or reopens) a progress record. A completed quest is
// reported as such instead of being restarted.
func (u *QuestUsecase) StartQuest(ctx context.Context, questID, userID uuid.UUID) (*entities.StartResult, error) {
	if _, err := u.questRepo.GetByID(ctx, questID); err != nil {
		return nil, err
	}

	progress, err := u.progressRepo.GetByUserAndQuest(ctx, userID, questID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if progress != nil && progress.Status == entities.ProgressCompleted {
		return &entities.StartResult{AlreadyCompleted: true, Progress: progress}, nil
	}

	if progress == nil {
		progress = &entities.Progress{
			UserID:  userID,
			QuestID: questID,
			Status:  entities.ProgressInProgress,
		}
		if err := u.progressRepo.Create(ctx, progress); err != nil {
			return nil, err
		}
	} else {
		progress.Status = entities.ProgressInProgress
		progress.StartedAt = time.Now()
		if err := u.progressRepo.Update(ctx, progress); err != nil {
			return nil, err
		}
	}

	return &entities.StartResult{Progress: progress}, nil
}

// SubmitQuest validates a block-order submission, scores it, and on
// success applies the quest's rewards to the user.
func (u *QuestUsecase) SubmitQuest(ctx context.Context, questID, userID uuid.UUID, blockOrder []string) (*entities.SubmitResult, error) {
	quest, err := u.questRepo.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if !quest.HasBlockData() {
		return nil, domainerrors.ErrNotBlockQuest
	}

	progress, err := u.progressRepo.GetByUserAndQuest(ctx, userID, questID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if progress != nil && progress.Status == entities.ProgressCompleted {
		return nil, domainerrors.ErrQuestCompleted
	}

	if progress == nil {
		progress = &entities.Progress{
			UserID:  userID,
			QuestID: questID,
			Status:  entities.ProgressInProgress,
		}
		if err := u.progressRepo.Create(ctx, progress); err != nil {
			return nil, err
		}
	}

	progress.Attempts++
	submitted, err := json.Marshal(blockOrder)
	if err != nil {
		return nil, err
	}
	progress.Code = string(submitted)

	if !orderMatches(blockOrder, quest.Content.CorrectOrder) {
		if err := u.progressRepo.Update(ctx, progress); err != nil {
			return nil, err
		}
		return &entities.SubmitResult{
			Success:   false,
			IsCorrect: false,
			Message:   "The block order is incorrect. Try again!",
			Progress:  progress,
		}, nil
	}

	now := time.Now()
	progress.Status = entities.ProgressCompleted
	progress.CompletedAt = &now
	progress.Score = computeScore(progress.Attempts, progress.HintsUsed)

	if err := u.userRepo.ApplyQuestRewards(ctx, userID, quest.ExperienceReward, quest.SolReward, progress.Score); err != nil {
		return nil, err
	}
	if err := u.progressRepo.Update(ctx, progress); err != nil {
		return nil, err
	}

	explanation := quest.Content.Explanation
	if explanation == "" {
		explanation = "Great job completing this quest!"
	}

	return &entities.SubmitResult{
		Success:     true,
		IsCorrect:   true,
		Explanation: explanation,
		Progress:    progress,
		Rewards: &entities.QuestReward{
			Experience: quest.ExperienceReward,
			Sol:        quest.SolReward,
			Score:      progress.Score,
		},
	}, nil
}

// GetHint returns the next hint for a quest, counting it against the
// user's score. The hint index clamps to the last available hint.
func (u *QuestUsecase) GetHint(ctx context.Context, questID, userID uuid.UUID) (*entities.HintResult, error) {
	quest, err := u.questRepo.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}

	progress, err := u.progressRepo.GetByUserAndQuest(ctx, userID, questID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if progress == nil {
		progress = &entities.Progress{
			UserID:    userID,
			QuestID:   questID,
			Status:    entities.ProgressInProgress,
			HintsUsed: 1,
		}
		if err := u.progressRepo.Create(ctx, progress); err != nil {
			return nil, err
		}
	} else {
		progress.HintsUsed++
		if err := u.progressRepo.Update(ctx, progress); err != nil {
			return nil, err
		}
	}

	hint := ""
	if len(quest.Content.Hints) > 0 {
		idx := progress.HintsUsed - 1
		if idx >= len(quest.Content.Hints) {
			idx = len(quest.Content.Hints) - 1
		}
		hint = quest.Content.Hints[idx]
	}

	return &entities.HintResult{Hint: hint, HintsUsed: progress.HintsUsed}, nil
}

func computeScore(attempts, hintsUsed int) int {
	score := baseScore - attempts*attemptPenalty - hintsUsed*hintPenalty
	if score < minimumScore {
		return minimumScore
	}
	return score
}

func orderMatches(submitted, correct []string) bool {
	if len(submitted) != len(correct) {
		return false
	}
	for i := range submitted {
		if submitted[i] != correct[i] {
			return false
		}
	}
	return true
}
