// Package scheduler は固定間隔でジョブを起動する周期ドライバーを提供します。
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Job は周期実行される処理です。エラーは自身の内部で処理し切る必要があります。
type Job func(ctx context.Context)

// Scheduler は1つのジョブを固定間隔で実行します。
// 前回の実行がまだ終わっていないときに次のティックが来た場合、そのティックは
// スキップされます。同じ対象に対する全量サイクルの重複実行を防ぐためです。
type Scheduler struct {
	name     string
	interval time.Duration
	job      Job
	running  atomic.Bool
}

// New は新しい Scheduler を作成します。
func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{name: name, interval: interval, job: job}
}

// Run はコンテキストがキャンセルされるまでティックごとにジョブを実行します。
// 呼び出し元のゴルーチンをブロックします。
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("scheduler started", "name", s.name, "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped", "name", s.name)
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce はジョブを1回実行します。実行中フラグはRunNowなど別ゴルーチンからの
// 起動と重なった場合の排他に使います。
func (s *Scheduler) runOnce(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		slog.Warn("previous run still in progress, skipping tick", "name", s.name)
		return false
	}
	defer s.running.Store(false)
	s.job(ctx)
	return true
}

// RunNow はティックを待たずにジョブを1回実行します。
// 既に実行中の場合はスキップし、falseを返します。
func (s *Scheduler) RunNow(ctx context.Context) bool {
	return s.runOnce(ctx)
}
