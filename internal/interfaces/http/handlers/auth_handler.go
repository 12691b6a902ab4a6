package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/interfaces/http/response"
	"quest-ring.backend/internal/usecases"
	"quest-ring.backend/pkg/logger"
)

// AuthHandler handles wallet authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// GenerateNonce issues a fresh nonce for the wallet to sign
// POST /api/auth/nonce
func (h *AuthHandler) GenerateNonce(c *gin.Context) {
	var input entities.NonceInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public key required"})
		return
	}

	nonce := h.authUsecase.GenerateNonce(input.PublicKey)

	response.Success(c, http.StatusOK, gin.H{"nonce": nonce})
}

// VerifySignature verifies a signed nonce and logs the wallet in
// POST /api/auth/verify
func (h *AuthHandler) VerifySignature(c *gin.Context) {
	var input entities.VerifyInput

	// Reject incomplete payloads before any signature or database work
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	h.authenticate(c, input.PublicKey, input.Signature, input.Message)
}

// Authenticate is the legacy verification endpoint. The public key
// arrives under the walletAddress field.
// POST /api/auth/authenticate
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var input entities.LegacyVerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	h.authenticate(c, input.WalletAddress, input.Signature, input.Message)
}

// GetLegacyNonce issues the older fixed-template nonce message
// GET /api/auth/nonce/:walletAddress
func (h *AuthHandler) GetLegacyNonce(c *gin.Context) {
	walletAddress := c.Param("walletAddress")
	nonce := h.authUsecase.GenerateLegacyNonce(walletAddress)

	response.Success(c, http.StatusOK, gin.H{"nonce": nonce})
}

func (h *AuthHandler) authenticate(c *gin.Context, publicKey, signature, message string) {
	result, err := h.authUsecase.VerifyAndAuthenticate(c.Request.Context(), publicKey, signature, message)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
		logger.Error(c.Request.Context(), "Authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	response.Success(c, http.StatusOK, result)
}
