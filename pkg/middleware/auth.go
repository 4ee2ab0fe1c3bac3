package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sf-domain-reports/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// WebhookTokenHeader é o cabeçalho com o token compartilhado enviado pelo n8n
const WebhookTokenHeader = "X-Webhook-Token"

// TokenVerifier valida o token compartilhado do webhook
type TokenVerifier struct {
	token string
	hash  []byte
}

// NewTokenVerifier aceita o token em texto puro ou o hash bcrypt dele.
// Com os dois vazios, o verificador fica desabilitado.
func NewTokenVerifier(token, hash string) *TokenVerifier {
	v := &TokenVerifier{token: token}
	if hash != "" {
		v.hash = []byte(hash)
	}
	return v
}

// Enabled indica se algum token foi configurado
func (v *TokenVerifier) Enabled() bool {
	return v.token != "" || len(v.hash) > 0
}

// Verify compara o token recebido com o configurado
func (v *TokenVerifier) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	if len(v.hash) > 0 {
		return bcrypt.CompareHashAndPassword(v.hash, []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.token), []byte(candidate)) == 1
}

// WebhookAuth exige o token compartilhado em X-Webhook-Token ou Authorization: Bearer
func WebhookAuth(verifier *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(WebhookTokenHeader)
			if token == "" {
				token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if !verifier.Verify(token) {
				logrus.WithField("path", r.URL.Path).Warn("webhook: token inválido ou ausente")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token do webhook inválido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
