package context

import (
	"NoteManager/pkg/response"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				_ = c.Error(err)
				return
			}
			response.Error(c, err)
		}
	}
}
