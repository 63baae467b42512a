package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "user-dashboard/internal/transport/http/response"
)

const defaultQueueWait = 10 * time.Second

// ConcurrencyLimit 限制同时处理的请求数。排队时间受请求 ctx 约束，
// 需挂在 Timeout 之后；ctx 没有截止时间时最多等 defaultQueueWait。
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, defaultQueueWait)
			defer cancel()
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeTooManyRequests, "server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
