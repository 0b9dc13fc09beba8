package handler

import (
	"NoteManager/pkg/log"
	"NoteManager/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Health struct {
	NoteService service.INoteService
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", h.Check)
}

func (h *Health) Check(c *gin.Context) {
	if err := h.NoteService.Ping(c.Request.Context()); err != nil {
		log.L.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
