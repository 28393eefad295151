// Package ratelimiter は外部API呼び出しなどの操作頻度を制限するための
// ペーシングポリシーを提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
// テストではフェイク実装を注入して待機をスキップできます。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// FixedDelayPacer は連続する呼び出しの間に固定のディレイを挟むペーサーです。
// ブートストラップ時の逐次プロバイダー呼び出しが上流のレートリミットを
// 踏まないようにするための、適応型でない単純なバックプレッシャーです。
type FixedDelayPacer struct {
	delay    time.Duration
	mu       sync.Mutex
	lastCall time.Time
	sleep    func(time.Duration) // 差し替え可能にしてテストでの実待機を避ける
}

// NewFixedDelayPacer は呼び出し間隔delayの新しいペーサーを生成します。
func NewFixedDelayPacer(delay time.Duration) *FixedDelayPacer {
	return &FixedDelayPacer{
		delay: delay,
		sleep: time.Sleep,
	}
}

// WaitIfNeeded は前回の呼び出しからdelay経過していなければ残り時間だけ待機します。
// 初回の呼び出しは待機しません。
func (p *FixedDelayPacer) WaitIfNeeded() {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if !p.lastCall.IsZero() {
		if wait := p.delay - now.Sub(p.lastCall); wait > 0 {
			p.sleep(wait)
		}
	}
	p.lastCall = time.Now()
}
