// Package tokenstore は失効済みJWTのjtiをRedisに保持するデナイリストを提供します。
// エントリはトークン自体の残存有効期間だけ保持され、期限が切れれば自然に消えます。
package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDenylist はRedisを使ったトークンデナイリストの実装です。
type RedisDenylist struct {
	client *redis.Client
	prefix string
}

// NewRedisDenylist は新しい RedisDenylist を作成します。
// prefixが空の場合は "revoked_token" を使います。
func NewRedisDenylist(client *redis.Client, prefix string) *RedisDenylist {
	if prefix == "" {
		prefix = "revoked_token"
	}
	return &RedisDenylist{client: client, prefix: prefix}
}

func (d *RedisDenylist) key(jti string) string {
	return fmt.Sprintf("%s:%s", d.prefix, jti)
}

// Revoke はjtiをトークンの有効期限までデナイリストに登録します。
// 既に期限切れのトークンは登録不要なので何もしません。
func (d *RedisDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.key(jti), "revoked", ttl).Err()
}

// IsRevoked はjtiがデナイリストに載っているかを返します。
func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if err := d.client.Get(ctx, d.key(jti)).Err(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
