package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency replays the stored response for a repeated Idempotency-Key on
// POST requests and rejects a duplicate that arrives while the first one is
// still running. Handlers finish the cycle with StoreIdempotentResponse.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis trouble should not block scheduling.
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// StoreIdempotentResponse caches a successful response under the request's
// idempotency key and releases the lock. It is a no-op when the request
// carried no key.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, body any) {
	if rdb == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())

	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		defer rdb.Del(ctx, lockKey)
	}

	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || status >= http.StatusBadRequest {
		return
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return
	}
	payload, err := json.Marshal(cachedResponse{Status: status, Body: raw})
	if err != nil {
		return
	}
	_ = rdb.Set(ctx, cacheKey, payload, idempotencyCacheTTL).Err()
}
