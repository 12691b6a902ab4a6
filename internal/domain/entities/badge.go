package entities

import (
	"time"

	"github.com/google/uuid"
)

// BadgeRarity represents how hard a badge is to earn
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "COMMON"
	RarityRare      BadgeRarity = "RARE"
	RarityEpic      BadgeRarity = "EPIC"
	RarityLegendary BadgeRarity = "LEGENDARY"
)

// Badge represents an achievement a user can earn. NFT metadata is carried
// for display only; nothing is minted server-side.
type Badge struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Requirement string            `json:"requirement"`
	Rarity      BadgeRarity       `json:"rarity"`
	MintAddress string            `json:"mintAddress,omitempty"`
	ImageURI    string            `json:"imageUri,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
