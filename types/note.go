package types

import (
	"NoteManager/models"
	"html/template"
)

// 字段约束
const (
	TitleMaxLength = 200
)

// NoteInput 请求体解码结果, nil 表示请求中没有该字段
type NoteInput struct {
	Title   *string
	Content *string
}

// NoteResponse 笔记
type NoteResponse struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// ListNotesRequest 列表分页参数, 不传 limit 时返回全部; limit 最大 100
type ListNotesRequest struct {
	Limit  *int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int  `form:"offset" binding:"omitempty,min=0,max=2147483647"`
}

func (r *ListNotesRequest) Paginated() bool {
	return r.Limit != nil
}

// ListNotesResponse 分页列表响应
type ListNotesResponse struct {
	Count    int64           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []*NoteResponse `json:"results"`
}

// NoteView 首页渲染用
type NoteView struct {
	ID      uint64
	Title   string
	Content template.HTML
}

func NoteToResponse(n *models.Note) *NoteResponse {
	return &NoteResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
	}
}

func NotesToResponses(list []*models.Note) []*NoteResponse {
	out := make([]*NoteResponse, len(list))
	for i := range list {
		out[i] = NoteToResponse(list[i])
	}
	return out
}
