package handler

import (
	"NoteManager/pkg/context"
	"NoteManager/pkg/markdown"
	"NoteManager/service"
	"NoteManager/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Home struct {
	NoteService service.INoteService
}

func (h *Home) RegisterRouter(r gin.IRouter) {
	r.GET("/", context.Wrap(h.Index))
}

// Index 首页, 服务端渲染全部笔记
func (h *Home) Index(c *gin.Context) error {
	notes, _, err := h.NoteService.List(c.Request.Context(), 0, 0)
	if err != nil {
		return err
	}
	views := make([]types.NoteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, types.NoteView{
			ID:      n.ID,
			Title:   n.Title,
			Content: markdown.Render(n.Content),
		})
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Notes": views})
	return nil
}
