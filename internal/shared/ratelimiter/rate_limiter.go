package ratelimiter

import (
	"time"

	"go.uber.org/ratelimit"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	// WaitIfNeeded は上限に達していれば次の枠まで待機し、待機した時間を返します。
	WaitIfNeeded() time.Duration
}

// RateLimiter は go.uber.org/ratelimit のリーキーバケットで呼び出し間隔を均します。
type RateLimiter struct {
	limiter ratelimit.Limiter
}

// NewRateLimiter は interval あたり limit 回までに制限するRateLimiterを生成します。
// limit が0以下の場合は制限なしになります。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		return &RateLimiter{limiter: ratelimit.NewUnlimited()}
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &RateLimiter{limiter: ratelimit.New(limit, ratelimit.Per(interval), ratelimit.WithoutSlack)}
}

// WaitIfNeeded は次の呼び出しが許可されるまでブロックします。
func (rl *RateLimiter) WaitIfNeeded() time.Duration {
	start := time.Now()
	rl.limiter.Take()
	return time.Since(start)
}
