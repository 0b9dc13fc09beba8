package dao

import (
	"NoteManager/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// Create 创建笔记, 写入后 note.ID 为自增主键
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Create(note).Error
}

// List 按 id 升序
func (d *NoteDAO) List(ctx context.Context, limit, offset int) ([]*models.Note, error) {
	return d.FindAll(ctx, "id ASC", limit, offset)
}

// Update 按主键更新指定列, 返回匹配的行数.
// MySQL 需要 clientFoundRows=true, 否则值未变化时返回 0
func (d *NoteDAO) Update(ctx context.Context, noteID uint64, fields map[string]any) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", noteID).
		Updates(fields)
	return res.RowsAffected, res.Error
}
