package usecases

import (
	"context"

	"github.com/google/uuid"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
)

// stubUserRepo implements repositories.UserRepository with overridable
// functions. Unset functions behave like an empty store.
type stubUserRepo struct {
	createFn               func(ctx context.Context, user *entities.User) error
	getByIDFn              func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByWalletFn          func(ctx context.Context, walletAddress string) (*entities.User, error)
	getByUsernameFn        func(ctx context.Context, username string) (*entities.User, error)
	touchLastActiveFn      func(ctx context.Context, id uuid.UUID) error
	updateUsernameFn       func(ctx context.Context, id uuid.UUID, username string) error
	applyQuestRewardsFn    func(ctx context.Context, id uuid.UUID, experience int, sol float64, score int) error
	listFn                 func(ctx context.Context) ([]*entities.User, error)
	countWithHigherScoreFn func(ctx context.Context, score int) (int64, error)

	createCalls          int
	getByWalletCalls     int
	touchLastActiveCalls int
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.User, error) {
	s.getByWalletCalls++
	if s.getByWalletFn != nil {
		return s.getByWalletFn(ctx, walletAddress)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	s.touchLastActiveCalls++
	if s.touchLastActiveFn != nil {
		return s.touchLastActiveFn(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	if s.updateUsernameFn != nil {
		return s.updateUsernameFn(ctx, id, username)
	}
	return nil
}

func (s *stubUserRepo) ApplyQuestRewards(ctx context.Context, id uuid.UUID, experience int, sol float64, score int) error {
	if s.applyQuestRewardsFn != nil {
		return s.applyQuestRewardsFn(ctx, id, experience, sol, score)
	}
	return nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) CountWithHigherScore(ctx context.Context, score int) (int64, error) {
	if s.countWithHigherScoreFn != nil {
		return s.countWithHigherScoreFn(ctx, score)
	}
	return 0, nil
}

// stubQuestRepo implements repositories.QuestRepository
type stubQuestRepo struct {
	createFn  func(ctx context.Context, quest *entities.Quest) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Quest, error)
	listFn    func(ctx context.Context, filter entities.QuestFilter) ([]*entities.Quest, error)
}

func (s *stubQuestRepo) Create(ctx context.Context, quest *entities.Quest) error {
	if s.createFn != nil {
		return s.createFn(ctx, quest)
	}
	return nil
}

func (s *stubQuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Quest, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubQuestRepo) List(ctx context.Context, filter entities.QuestFilter) ([]*entities.Quest, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}

// stubProgressRepo implements repositories.ProgressRepository
type stubProgressRepo struct {
	createFn            func(ctx context.Context, progress *entities.Progress) error
	getByUserAndQuestFn func(ctx context.Context, userID, questID uuid.UUID) (*entities.Progress, error)
	listByUserFn        func(ctx context.Context, userID uuid.UUID) ([]*entities.Progress, error)
	updateFn            func(ctx context.Context, progress *entities.Progress) error
	countCompletedFn    func(ctx context.Context, userID uuid.UUID) (int64, error)

	createCalls int
	updateCalls int
}

func (s *stubProgressRepo) Create(ctx context.Context, progress *entities.Progress) error {
	s.createCalls++
	if s.createFn != nil {
		return s.createFn(ctx, progress)
	}
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	return nil
}

func (s *stubProgressRepo) GetByUserAndQuest(ctx context.Context, userID, questID uuid.UUID) (*entities.Progress, error) {
	if s.getByUserAndQuestFn != nil {
		return s.getByUserAndQuestFn(ctx, userID, questID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Progress, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubProgressRepo) Update(ctx context.Context, progress *entities.Progress) error {
	s.updateCalls++
	if s.updateFn != nil {
		return s.updateFn(ctx, progress)
	}
	return nil
}

func (s *stubProgressRepo) CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.countCompletedFn != nil {
		return s.countCompletedFn(ctx, userID)
	}
	return 0, nil
}

// stubLeaderboardRepo implements repositories.LeaderboardRepository
type stubLeaderboardRepo struct {
	topFn    func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	upsertFn func(ctx context.Context, entries []*entities.LeaderboardEntry) error

	topCalls int
}

func (s *stubLeaderboardRepo) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	s.topCalls++
	if s.topFn != nil {
		return s.topFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubLeaderboardRepo) Upsert(ctx context.Context, entries []*entities.LeaderboardEntry) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, entries)
	}
	return nil
}

// stubBadgeRepo implements repositories.BadgeRepository
type stubBadgeRepo struct {
	listByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*entities.Badge, error)
	countByUserFn func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (s *stubBadgeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Badge, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubBadgeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s.countByUserFn != nil {
		return s.countByUserFn(ctx, userID)
	}
	return 0, nil
}

// stubLeaderboardCache implements the LeaderboardCache interface
type stubLeaderboardCache struct {
	getTopFn     func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	setTopFn     func(ctx context.Context, limit int, entries []*entities.LeaderboardEntry) error
	invalidateFn func(ctx context.Context, limit int) error

	setTopCalls     int
	invalidateCalls int
}

func (s *stubLeaderboardCache) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	if s.getTopFn != nil {
		return s.getTopFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubLeaderboardCache) SetTop(ctx context.Context, limit int, entries []*entities.LeaderboardEntry) error {
	s.setTopCalls++
	if s.setTopFn != nil {
		return s.setTopFn(ctx, limit, entries)
	}
	return nil
}

func (s *stubLeaderboardCache) Invalidate(ctx context.Context, limit int) error {
	s.invalidateCalls++
	if s.invalidateFn != nil {
		return s.invalidateFn(ctx, limit)
	}
	return nil
}
