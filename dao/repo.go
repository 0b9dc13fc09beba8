package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用的单表读写, 由各 DAO 内嵌
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindByID 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAll limit <= 0 时不分页
func (r *Repo[T]) FindAll(ctx context.Context, order string, limit, offset int) ([]*T, error) {
	items := make([]*T, 0)
	tx := r.Db.WithContext(ctx).Order(order)
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}
	err := tx.Find(&items).Error
	return items, err
}

func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.Db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}

// Delete 返回受影响行数
func (r *Repo[T]) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.Db.WithContext(ctx).Delete(new(T), id)
	return res.RowsAffected, res.Error
}
