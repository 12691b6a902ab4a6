// Package solana provides the wallet-side primitives of the sign-in flow:
// detached Ed25519 signature verification over base58-encoded material, and
// nonce generation for the challenge message.
package solana

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"quest-ring.backend/pkg/logger"
)

// VerifySignature checks that publicKey signed message with a detached
// Ed25519 signature. Both publicKey and signature are base58-encoded.
// Any decoding failure is treated the same as a bad signature: the
// function returns false and never panics. Only a truncated key prefix
// and lengths are ever logged.
func VerifySignature(publicKey, signature, message string) bool {
	publicKeyBytes, err := base58.Decode(publicKey)
	if err != nil {
		logger.Debug(context.Background(), "signature verification: bad public key encoding",
			zap.String("publicKey", truncateKey(publicKey)))
		return false
	}
	if len(publicKeyBytes) != ed25519.PublicKeySize {
		return false
	}

	signatureBytes, err := base58.Decode(signature)
	if err != nil {
		logger.Debug(context.Background(), "signature verification: bad signature encoding",
			zap.String("publicKey", truncateKey(publicKey)))
		return false
	}
	if len(signatureBytes) != ed25519.SignatureSize {
		return false
	}

	verified := ed25519.Verify(publicKeyBytes, []byte(message), signatureBytes)

	logger.Debug(context.Background(), "signature verification",
		zap.String("publicKey", truncateKey(publicKey)),
		zap.Int("signatureLength", len(signatureBytes)),
		zap.Int("messageLength", len(message)),
		zap.Bool("verified", verified),
	)

	return verified
}

func truncateKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8] + "..."
}
