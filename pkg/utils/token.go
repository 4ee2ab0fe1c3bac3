package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const tokenCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Limites do token de webhook; bcrypt ignora bytes além de 72
const (
	MinTokenLength = 24
	MaxTokenLength = 72
)

// GenerateToken gera um token aleatório alfanumérico
func GenerateToken(length int) (string, error) {
	if length < MinTokenLength || length > MaxTokenLength {
		return "", errors.Errorf("tamanho do token deve estar entre %d e %d", MinTokenLength, MaxTokenLength)
	}
	return gonanoid.Generate(tokenCharacters, length)
}

// HashToken gera o hash bcrypt do token para WEBHOOK_TOKEN_HASH
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar hash do token")
	}
	return string(hash), nil
}
