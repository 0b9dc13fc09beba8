package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail 非字段类错误的响应体
type Detail struct {
	Detail string `json:"detail"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Detail{Detail: msg})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Detail{Detail: msg})
}
