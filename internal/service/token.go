package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/repository"

	"gorm.io/gorm"
)

// TokenService issues and looks up registry bearer tokens. Issuance is
// idempotent: one token per principal, derived once, never rotated by the
// service itself.
type TokenService struct {
	tokens repository.TokenRepositoryInterface
	key    []byte
	iv     []byte
}

// NewTokenService creates a token service. The key must be 32 bytes and the
// initialization vector 16; anything else is a configuration error.
func NewTokenService(tokens repository.TokenRepositoryInterface, key, iv []byte) (*TokenService, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("token key must be 32 bytes, got %d", len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("token iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	return &TokenService{tokens: tokens, key: key, iv: iv}, nil
}

// IssueOrFetch returns the principal's token, creating it on first call.
// An existing row is returned verbatim; a banned row is refused.
func (s *TokenService) IssueOrFetch(userID int64, email string) (string, error) {
	if userID <= 0 {
		return "", apperrors.NewBadRequest("Invalid principal id")
	}

	existing, err := s.tokens.GetByUserID(userID)
	if err == nil {
		if existing.IsBanned {
			return "", apperrors.ErrBannedUser
		}
		return existing.Token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.NewInternal(err)
	}

	tokenString, err := s.derive(userID, email)
	if err != nil {
		return "", apperrors.NewInternal(err)
	}

	row := &models.Token{
		UserID: userID,
		Email:  email,
		Token:  tokenString,
	}
	if err := s.tokens.Create(row); err != nil {
		// A concurrent first issuance won the race; its token is the token.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, lookupErr := s.tokens.GetByUserID(userID)
			if lookupErr != nil {
				return "", apperrors.NewInternal(lookupErr)
			}
			return winner.Token, nil
		}
		return "", apperrors.NewInternal(err)
	}

	return tokenString, nil
}

// Lookup resolves a presented token string to its row, enforcing the ban
// flag. Validation on read is a plain lookup; the cryptographic construction
// is only ever evaluated at issuance.
func (s *TokenService) Lookup(tokenString string) (*models.Token, error) {
	row, err := s.tokens.GetByToken(tokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotBound
		}
		return nil, apperrors.NewInternal(err)
	}
	if row.IsBanned {
		return nil, apperrors.ErrBannedUser
	}
	return row, nil
}

// derive builds the token: the email and principal id are mixed with a
// coarse time-based nonce, hashed, encrypted under the operator key, and
// base64-encoded. The nonce makes tokens unguessable across issuances; the
// email/id mix ties the token to its principal.
func (s *TokenService) derive(userID int64, email string) (string, error) {
	now := uint64(time.Now().UnixMicro())
	nonce := uint64(userID) ^ (now % uint64(userID))

	digest := sha256.Sum256(fmt.Appendf(nil, "%s:%d", email, nonce))
	plaintext := []byte(hex.EncodeToString(digest[:]))

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, s.iv).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}
