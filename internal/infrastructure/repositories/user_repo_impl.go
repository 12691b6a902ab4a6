package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. The unique index on wallet_address converts a
// duplicate concurrent first-login into an ErrAlreadyExists for the loser.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByWalletAddress gets a user by wallet address
func (r *UserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByUsername gets a user by display name
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// TouchLastActive marks the user active now
func (r *UserRepository) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_active", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateUsername sets the display name
func (r *UserRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("username", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrUsernameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ApplyQuestRewards credits experience, simulated SOL and score in one update
func (r *UserRepository) ApplyQuestRewards(ctx context.Context, id uuid.UUID, experience int, sol float64, score int) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"experience":       gorm.Expr("experience + ?", experience),
			"play_sol_balance": gorm.Expr("play_sol_balance + ?", sol),
			"total_score":      gorm.Expr("total_score + ?", score),
			"last_active":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := r.db.WithContext(ctx).Order("joined_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// CountWithHigherScore counts users strictly above the given total score
func (r *UserRepository) CountWithHigherScore(ctx context.Context, score int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("total_score > ?", score).
		Count(&count).Error
	return count, err
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:                  u.ID,
		WalletAddress:       u.WalletAddress,
		Username:            u.Username.Ptr(),
		CurrentLevel:        string(u.CurrentLevel),
		Experience:          u.Experience,
		PlaySolBalance:      u.PlaySolBalance,
		DevnetWalletAddress: u.DevnetWalletAddress.Ptr(),
		TotalScore:          u.TotalScore,
		Streak:              u.Streak,
		LastStreakDate:      u.LastStreakDate,
		JoinedAt:            u.JoinedAt,
		LastActive:          u.LastActive,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                  m.ID,
		WalletAddress:       m.WalletAddress,
		Username:            null.StringFromPtr(m.Username),
		CurrentLevel:        entities.DifficultyLevel(m.CurrentLevel),
		Experience:          m.Experience,
		PlaySolBalance:      m.PlaySolBalance,
		DevnetWalletAddress: null.StringFromPtr(m.DevnetWalletAddress),
		TotalScore:          m.TotalScore,
		Streak:              m.Streak,
		LastStreakDate:      m.LastStreakDate,
		JoinedAt:            m.JoinedAt,
		LastActive:          m.LastActive,
	}
}
