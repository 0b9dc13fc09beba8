package middleware

import (
	"NoteManager/config"
	"NoteManager/pkg/log"
	"NoteManager/pkg/response"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit 按客户端 IP 的固定窗口限流. rdb 为 nil 或未开启时直接放行,
// redis 出错时放行并记录日志.
func RateLimit(rdb *redis.Client, conf *config.RateLimit) gin.HandlerFunc {
	if rdb == nil || conf == nil || !conf.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	window := conf.Window()
	limit := int64(conf.Requests)

	return func(c *gin.Context) {
		now := time.Now()
		bucket := now.Unix() / int64(conf.WindowSeconds)
		key := rateLimitKey(c.ClientIP(), bucket)

		var incr *redis.IntCmd
		_, err := rdb.TxPipelined(c.Request.Context(), func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(c.Request.Context(), key)
			pipe.Expire(c.Request.Context(), key, window)
			return nil
		})
		if err != nil {
			log.L.Warn("rate limit unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		remaining := limit - incr.Val()
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if incr.Val() > limit {
			wait := (bucket+1)*int64(conf.WindowSeconds) - now.Unix()
			c.Header("Retry-After", strconv.FormatInt(wait, 10))
			response.Abort(c, http.StatusTooManyRequests,
				fmt.Sprintf("Request was throttled. Expected available in %d seconds.", wait))
			return
		}
		c.Next()
	}
}

func rateLimitKey(ip string, bucket int64) string {
	return fmt.Sprintf("notes:ratelimit:%s:%d", ip, bucket)
}
