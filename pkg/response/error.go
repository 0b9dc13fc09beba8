package response

import (
	"NoteManager/pkg/log"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgNotFound    = "Not found."
	MsgServerError = "A server error occurred."
)

// BizError 带 HTTP 状态码的业务错误
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NotFound() *BizError {
	return NewError(http.StatusNotFound, MsgNotFound)
}

func MethodNotAllowed(method string) *BizError {
	return NewError(http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", method))
}

// ValidationError 字段级校验错误, 渲染为 {"field": ["msg", ...]}
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Error 把 handler 返回的错误写成响应
func Error(c *gin.Context, err error) {
	var (
		ve *ValidationError
		be *BizError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ve.Fields)
	case errors.As(err, &be):
		Fail(c, be.Code, be.Msg)
	default:
		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, MsgServerError)
	}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				Abort(c, http.StatusInternalServerError, MsgServerError)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Error(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}
