package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DifficultyLevel represents a player's (or quest's) difficulty tier
type DifficultyLevel string

const (
	DifficultyNovice   DifficultyLevel = "NOVICE"
	DifficultyExplorer DifficultyLevel = "EXPLORER"
	DifficultyBuilder  DifficultyLevel = "BUILDER"
	DifficultyMaster   DifficultyLevel = "MASTER"
)

// User represents a player identified by a wallet address
type User struct {
	ID                  uuid.UUID       `json:"id"`
	WalletAddress       string          `json:"walletAddress"`
	Username            null.String     `json:"username,omitempty"`
	CurrentLevel        DifficultyLevel `json:"currentLevel"`
	Experience          int             `json:"experience"`
	PlaySolBalance      float64         `json:"playSolBalance"`
	DevnetWalletAddress null.String     `json:"devnetWalletAddress,omitempty"`
	TotalScore          int             `json:"totalScore"`
	Streak              int             `json:"streak"`
	LastStreakDate      *time.Time      `json:"lastStreakDate,omitempty"`
	JoinedAt            time.Time       `json:"joinedAt"`
	LastActive          time.Time       `json:"lastActive"`
}

// PublicProfile is the user projection returned by authentication and
// profile endpoints. It never carries internal fields.
type PublicProfile struct {
	ID             uuid.UUID       `json:"id"`
	WalletAddress  string          `json:"walletAddress"`
	Username       null.String     `json:"username"`
	CurrentLevel   DifficultyLevel `json:"currentLevel"`
	Experience     int             `json:"experience"`
	PlaySolBalance float64         `json:"playSolBalance"`
	TotalScore     int             `json:"totalScore"`
	Streak         int             `json:"streak"`
}

// Public returns the safe projection of the user
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:             u.ID,
		WalletAddress:  u.WalletAddress,
		Username:       u.Username,
		CurrentLevel:   u.CurrentLevel,
		Experience:     u.Experience,
		PlaySolBalance: u.PlaySolBalance,
		TotalScore:     u.TotalScore,
		Streak:         u.Streak,
	}
}

// NonceInput represents input for requesting a signing nonce
type NonceInput struct {
	PublicKey string `json:"publicKey" binding:"required"`
}

// VerifyInput represents input for signature verification
type VerifyInput struct {
	PublicKey string `json:"publicKey" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// LegacyVerifyInput is the older client shape: the public key arrives
// under the walletAddress field. Same operation, different name.
type LegacyVerifyInput struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
	Message       string `json:"message" binding:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token string         `json:"token"`
	User  *PublicProfile `json:"user"`
}

// UpdateUsernameInput represents input for updating a username
type UpdateUsernameInput struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
}
