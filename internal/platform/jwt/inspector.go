package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo は検証済みトークンから取り出した、失効処理に必要なクレームです。
type TokenInfo struct {
	JTI       string
	UserID    uint
	ExpiresAt time.Time
}

// Inspector parses and verifies a signed token and extracts its claims.
// ログアウト時の失効処理がjtiと有効期限を知るために使います。
type Inspector interface {
	Inspect(token string) (TokenInfo, error)
}

// inspector implements the Inspector interface.
type inspector struct {
	secret []byte
}

// NewInspector creates a new token inspector with the provided secret.
func NewInspector(secret string) Inspector {
	return &inspector{secret: []byte(secret)}
}

// Inspect は署名を検証し、jti・sub・expクレームを取り出します。
// 署名不正・期限切れ・クレーム欠落はすべてエラーです。
func (i *inspector) Inspect(tokenStr string) (TokenInfo, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenInfo{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenInfo{}, errors.New("invalid token claims")
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return TokenInfo{}, fmt.Errorf("token has no jti claim")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return TokenInfo{}, fmt.Errorf("token has no sub claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return TokenInfo{}, fmt.Errorf("token has no exp claim")
	}

	return TokenInfo{
		JTI:       jti,
		UserID:    uint(sub),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
