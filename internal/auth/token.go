package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/cfg"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager выпускает и проверяет подписанные HS256-токены сессий.
// Токен и cookie живут одинаковый срок (cfg.Auth.SessionTTL).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg *cfg.AuthCfg) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.SessionTTL,
	}
}

// TTL возвращает срок жизни сессии, используется для expiry cookie.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) Issue(userID int64, email string, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", e.Wrap("failed to sign session token", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок токена и возвращает ID пользователя.
func (m *TokenManager) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, e.Wrap("invalid or expired token", e.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, e.Wrap("invalid token claims", e.ErrUnauthorized)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, e.Wrap("missing subject claim", e.ErrUnauthorized)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, e.Wrap("invalid subject claim", e.ErrUnauthorized)
	}

	return userID, nil
}
