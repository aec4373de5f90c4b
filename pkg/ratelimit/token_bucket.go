// Package ratelimit 提供进程内令牌桶限流器
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket 实现令牌桶算法的限流器
type TokenBucket struct {
	rate           float64    // 每秒生成的令牌数
	capacity       float64    // 桶的容量
	tokens         float64    // 当前令牌数
	lastRefillTime time.Time  // 上次填充令牌的时间
	mutex          sync.Mutex // 互斥锁，保证并发安全
}

// NewTokenBucket 创建一个新的令牌桶限流器，初始时桶是满的
func NewTokenBucket(ratePerSecond float64, capacity int) *TokenBucket {
	if capacity <= 0 {
		capacity = 1
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}

	return &TokenBucket{
		rate:           ratePerSecond,
		capacity:       float64(capacity),
		tokens:         float64(capacity),
		lastRefillTime: time.Now(),
	}
}

// refill 根据经过的时间填充令牌
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefillTime).Seconds()
	tb.lastRefillTime = now

	newTokens := elapsed * tb.rate
	if tb.tokens+newTokens > tb.capacity {
		tb.tokens = tb.capacity
	} else {
		tb.tokens += newTokens
	}
}

// Allow 判断是否允许通过一个请求，消耗一个令牌
func (tb *TokenBucket) Allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter 按客户端维护独立令牌桶的限流器
type Limiter struct {
	rate     float64
	capacity int
	mutex    sync.Mutex
	buckets  map[string]*TokenBucket
}

// NewLimiter 创建按key(通常为客户端IP)限流的限流器
func NewLimiter(ratePerSecond float64, capacity int) *Limiter {
	return &Limiter{
		rate:     ratePerSecond,
		capacity: capacity,
		buckets:  make(map[string]*TokenBucket),
	}
}

// Allow 判断指定key的请求是否允许通过
func (l *Limiter) Allow(key string) bool {
	l.mutex.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = NewTokenBucket(l.rate, l.capacity)
		l.buckets[key] = bucket
	}
	l.mutex.Unlock()

	return bucket.Allow()
}
