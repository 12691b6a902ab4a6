package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/domain/repositories"
	"quest-ring.backend/pkg/jwt"
	"quest-ring.backend/pkg/logger"
	"quest-ring.backend/pkg/solana"
)

var verifyWalletSignature = solana.VerifySignature

// AuthUsecase orchestrates the wallet-signature authentication exchange:
// signature verification, user lookup-or-creation, token issuance.
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	jwtService    *jwt.Service
	airdropAmount float64
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.Service, airdropAmount float64) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		jwtService:    jwtService,
		airdropAmount: airdropAmount,
	}
}

// GenerateNonce produces a fresh challenge for the client to embed in the
// message it signs. Nothing is stored server-side.
func (u *AuthUsecase) GenerateNonce(publicKey string) string {
	_ = publicKey // accepted for API symmetry, not used in generation
	return solana.GenerateNonce()
}

// GenerateLegacyNonce returns the older full-message challenge
func (u *AuthUsecase) GenerateLegacyNonce(walletAddress string) string {
	_ = walletAddress
	return solana.LegacyNonce()
}

// VerifyAndAuthenticate checks the detached signature, finds or lazily
// creates the user, and issues a session token. An invalid signature is
// rejected before any database work.
func (u *AuthUsecase) VerifyAndAuthenticate(ctx context.Context, publicKey, signature, message string) (*entities.AuthResponse, error) {
	if !verifyWalletSignature(publicKey, signature, message) {
		return nil, domainerrors.ErrInvalidSignature
	}

	user, err := u.userRepo.GetByWalletAddress(ctx, publicKey)
	switch {
	case err == nil:
		if err := u.userRepo.TouchLastActive(ctx, user.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, domainerrors.ErrNotFound):
		now := time.Now()
		user = &entities.User{
			ID:             uuid.New(),
			WalletAddress:  publicKey,
			CurrentLevel:   entities.DifficultyNovice,
			PlaySolBalance: u.airdropAmount,
			JoinedAt:       now,
			LastActive:     now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		logger.Info(ctx, "new user created",
			zap.String("walletAddress", truncate(publicKey)))
	default:
		return nil, err
	}

	token, err := u.jwtService.Generate(user.WalletAddress, user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

func truncate(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8] + "..."
}
