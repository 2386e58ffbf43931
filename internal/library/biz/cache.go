package biz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/kart-io/logger"
	"github.com/redis/go-redis/v9"

	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
	cacheopts "github.com/luminalib/luminalib/pkg/options/cache"
)

// AnswerCache caches QA results in Redis keyed by question hash.
// 所有缓存错误只记日志, 不影响主流程.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewAnswerCache creates the cache.
func NewAnswerCache(client *redis.Client, opts *cacheopts.Options) *AnswerCache {
	return &AnswerCache{
		client: client,
		ttl:    opts.TTL,
		prefix: opts.KeyPrefix,
	}
}

func (c *AnswerCache) key(question string) string {
	sum := sha256.Sum256([]byte(question))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns the cached result for question, or nil on miss or error.
func (c *AnswerCache) Get(ctx context.Context, question string) *AnswerResult {
	key := c.key(question)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warnw("Answer cache get failed", "error", err)
		}
		return nil
	}

	var result AnswerResult
	if err := jsonutil.Unmarshal(data, &result); err != nil {
		logger.Warnw("Answer cache entry corrupted, dropping", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil
	}
	return &result
}

// Set stores the result for question.
func (c *AnswerCache) Set(ctx context.Context, question string, result *AnswerResult) {
	data, err := jsonutil.Marshal(result)
	if err != nil {
		logger.Warnw("Answer cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(question), data, c.ttl).Err(); err != nil {
		logger.Warnw("Answer cache set failed", "error", err)
	}
}
