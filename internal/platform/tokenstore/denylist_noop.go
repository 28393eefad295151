package tokenstore

import (
	"context"
	"time"
)

// NoopDenylist はRedisが構成されていないときに使うデナイリストです。
// 失効登録は破棄され、どのトークンも失効済みとは判定されません。
// ログアウトはトークンの自然失効に任せる縮退動作になります。
type NoopDenylist struct{}

// NewNoopDenylist は新しい NoopDenylist を作成します。
func NewNoopDenylist() *NoopDenylist {
	return &NoopDenylist{}
}

// Revoke は何もしません。
func (*NoopDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	return nil
}

// IsRevoked は常にfalseを返します。
func (*NoopDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
