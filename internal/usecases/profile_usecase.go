package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/domain/repositories"
)

// ProfileUsecase serves user profiles, usernames and badges
type ProfileUsecase struct {
	userRepo     repositories.UserRepository
	progressRepo repositories.ProgressRepository
	badgeRepo    repositories.BadgeRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	badgeRepo repositories.BadgeRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		badgeRepo:    badgeRepo,
	}
}

// GetProfile returns the user with progress stats and completed quest IDs
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := u.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	badgeCount, err := u.badgeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := entities.ProfileStats{
		TotalQuests:  len(records),
		BadgesEarned: int(badgeCount),
	}
	completedIDs := make([]uuid.UUID, 0)
	for _, p := range records {
		switch p.Status {
		case entities.ProgressCompleted:
			stats.CompletedQuests++
			completedIDs = append(completedIDs, p.QuestID)
		case entities.ProgressInProgress:
			stats.InProgressQuests++
		}
	}

	return &entities.Profile{
		User:              user,
		Stats:             stats,
		CompletedQuestIDs: completedIDs,
	}, nil
}

// GetCompletedQuestIDs returns the IDs of the user's completed quests
func (u *ProfileUsecase) GetCompletedQuestIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	records, err := u.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0)
	for _, p := range records {
		if p.Status == entities.ProgressCompleted {
			ids = append(ids, p.QuestID)
		}
	}
	return ids, nil
}

// UpdateUsername sets a display name after length and uniqueness checks
func (u *ProfileUsecase) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*entities.User, error) {
	if len(username) < 3 || len(username) > 20 {
		return nil, domainerrors.ErrInvalidInput
	}

	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err == nil && existing.ID != userID {
		return nil, domainerrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if err := u.userRepo.UpdateUsername(ctx, userID, username); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, userID)
}

// GetBadges returns the badges a user has earned
func (u *ProfileUsecase) GetBadges(ctx context.Context, userID uuid.UUID) ([]*entities.Badge, error) {
	// Fail on unknown users rather than returning an empty list
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.badgeRepo.ListByUser(ctx, userID)
}
