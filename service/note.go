package service

import (
	"NoteManager/dao"
	"NoteManager/models"
	"NoteManager/pkg/database"
	"NoteManager/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("note not found")

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	List(ctx context.Context, limit, offset int) ([]*models.Note, int64, error)
	Create(ctx context.Context, in *types.NoteInput) (*models.Note, error)
	Get(ctx context.Context, noteID uint64) (*models.Note, error)
	Replace(ctx context.Context, noteID uint64, in *types.NoteInput) (*models.Note, error)
	Patch(ctx context.Context, noteID uint64, in *types.NoteInput) (*models.Note, error)
	Delete(ctx context.Context, noteID uint64) error
	Ping(ctx context.Context) error
}

type NoteService struct {
	NoteDAO *dao.NoteDAO
}

// List limit <= 0 时返回全部笔记, total 为笔记总数
func (s *NoteService) List(ctx context.Context, limit, offset int) ([]*models.Note, int64, error) {
	notes, err := s.NoteDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		return notes, int64(len(notes)), nil
	}
	total, err := s.NoteDAO.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// Create 创建笔记
func (s *NoteService) Create(ctx context.Context, in *types.NoteInput) (*models.Note, error) {
	note := &models.Note{}
	applyInput(note, in)
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, noteID uint64) (*models.Note, error) {
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoteNotFound
	}
	return note, err
}

// Replace 全量更新, 请求中没有的可选字段置空
func (s *NoteService) Replace(ctx context.Context, noteID uint64, in *types.NoteInput) (*models.Note, error) {
	full := &types.NoteInput{Title: in.Title, Content: in.Content}
	if full.Content == nil {
		empty := ""
		full.Content = &empty
	}
	return s.update(ctx, noteID, full)
}

// Patch 部分更新
func (s *NoteService) Patch(ctx context.Context, noteID uint64, in *types.NoteInput) (*models.Note, error) {
	return s.update(ctx, noteID, in)
}

func (s *NoteService) update(ctx context.Context, noteID uint64, in *types.NoteInput) (*models.Note, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	fields := applyInput(note, in)
	if len(fields) == 0 {
		return note, nil
	}
	n, err := s.NoteDAO.Update(ctx, noteID, fields)
	if err != nil {
		return nil, err
	}
	// 读取与更新之间被删除
	if n == 0 {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, noteID uint64) error {
	n, err := s.NoteDAO.Delete(ctx, noteID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (s *NoteService) Ping(ctx context.Context) error {
	return database.Ping(ctx, s.NoteDAO.Db)
}

// applyInput 把请求字段写入 note, 返回需要落库的列
func applyInput(note *models.Note, in *types.NoteInput) map[string]any {
	fields := make(map[string]any, 2)
	if in.Title != nil {
		note.Title = *in.Title
		fields["title"] = note.Title
	}
	if in.Content != nil {
		note.Content = *in.Content
		fields["content"] = note.Content
	}
	return fields
}
