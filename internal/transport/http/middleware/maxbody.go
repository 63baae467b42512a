package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "user-dashboard/internal/transport/http/response"
)

// MaxBodyBytes 声明长度超限直接拒绝；未声明长度的由 MaxBytesReader 在读取时截断
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
