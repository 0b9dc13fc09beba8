package handler

import (
	"NoteManager/pkg/context"
	"NoteManager/pkg/response"
	"NoteManager/service"
	"NoteManager/types"
	"errors"
	"io"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/notes")
	g.GET("/", context.Wrap(n.List))
	g.POST("/", context.Wrap(n.Create))
	g.GET("/:id/", context.Wrap(n.Retrieve))
	g.PUT("/:id/", context.Wrap(n.Update))
	g.PATCH("/:id/", context.Wrap(n.PartialUpdate))
	g.DELETE("/:id/", context.Wrap(n.Destroy))
}

// List 笔记列表, 带 limit 时分页
func (n *Note) List(c *gin.Context) error {
	var req types.ListNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}

	if !req.Paginated() {
		notes, _, err := n.NoteService.List(c.Request.Context(), 0, 0)
		if err != nil {
			return err
		}
		response.Success(c, types.NotesToResponses(notes))
		return nil
	}

	limit := *req.Limit
	notes, total, err := n.NoteService.List(c.Request.Context(), limit, req.Offset)
	if err != nil {
		return err
	}
	rep := types.ListNotesResponse{
		Count:   total,
		Results: types.NotesToResponses(notes),
	}
	if int64(req.Offset)+int64(limit) < total {
		rep.Next = pageURL(c, limit, req.Offset+limit)
	}
	if req.Offset > 0 {
		rep.Previous = pageURL(c, limit, max(req.Offset-limit, 0))
	}
	response.Success(c, rep)
	return nil
}

// Create 创建笔记
func (n *Note) Create(c *gin.Context) error {
	in, err := decodeBody(c, false)
	if err != nil {
		return err
	}
	note, err := n.NoteService.Create(c.Request.Context(), in)
	if err != nil {
		return err
	}
	response.Created(c, types.NoteToResponse(note))
	return nil
}

func (n *Note) Retrieve(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	note, err := n.NoteService.Get(c.Request.Context(), id)
	if err != nil {
		return notFound(err)
	}
	response.Success(c, types.NoteToResponse(note))
	return nil
}

// Update PUT 全量更新
func (n *Note) Update(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	// 先确认笔记存在, 不存在的 id 一律 404
	if _, err := n.NoteService.Get(c.Request.Context(), id); err != nil {
		return notFound(err)
	}
	in, err := decodeBody(c, false)
	if err != nil {
		return err
	}
	note, err := n.NoteService.Replace(c.Request.Context(), id, in)
	if err != nil {
		return notFound(err)
	}
	response.Success(c, types.NoteToResponse(note))
	return nil
}

// PartialUpdate PATCH 部分更新
func (n *Note) PartialUpdate(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	// 先确认笔记存在, 不存在的 id 一律 404
	if _, err := n.NoteService.Get(c.Request.Context(), id); err != nil {
		return notFound(err)
	}
	in, err := decodeBody(c, true)
	if err != nil {
		return err
	}
	note, err := n.NoteService.Patch(c.Request.Context(), id, in)
	if err != nil {
		return notFound(err)
	}
	response.Success(c, types.NoteToResponse(note))
	return nil
}

func (n *Note) Destroy(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := n.NoteService.Delete(c.Request.Context(), id); err != nil {
		return notFound(err)
	}
	response.NoContent(c)
	return nil
}

// parseID 非正整数或超出主键范围(int64)的 id 与路由不匹配, 按 404 处理
func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, response.NotFound()
	}
	return id, nil
}

func decodeBody(c *gin.Context, partial bool) (*types.NoteInput, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	return types.DecodeNote(body, partial)
}

func notFound(err error) error {
	if errors.Is(err, service.ErrNoteNotFound) {
		return response.NotFound()
	}
	return err
}

func pageURL(c *gin.Context, limit, offset int) *string {
	u := url.URL{
		Scheme: "http",
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	q := c.Request.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
