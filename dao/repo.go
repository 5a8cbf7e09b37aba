package dao

import (
	"context"
	"errors"

	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

// Repo carries the queries shared by every table DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Conn returns the transaction bound to ctx, or a plain session.
func (r *Repo[T]) Conn(ctx context.Context) *gorm.DB {
	return conn(ctx, r.Db)
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Conn(ctx).Model(new(T))
}

// FindByID 主键查询, 未找到返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Conn(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, passthrough("find by id", err)
	}
	return &item, nil
}

// FindByIDs keeps no particular order.
func (r *Repo[T]) FindByIDs(ctx context.Context, ids []uint64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.Conn(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, passthrough("find by ids", err)
	}
	return items, nil
}

// FindByWhere 条件查询单条记录
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, passthrough("find by where", err)
	}
	return &item, nil
}

// IsExist 判断记录是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var item T
	err := r.Conn(ctx).Select("id").Where(where, args...).Limit(1).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errs.Infra("exists", err)
	}
	return true, nil
}

func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var total int64
	if err := r.Model(ctx).Where(where, args...).Count(&total).Error; err != nil {
		return 0, errs.Infra("count", err)
	}
	return total, nil
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return passthrough("create", r.Conn(ctx).Create(item).Error)
}

// Delete returns the number of removed rows.
func (r *Repo[T]) Delete(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Conn(ctx).Where(where, args...).Delete(new(T))
	if res.Error != nil {
		return 0, errs.Infra("delete", res.Error)
	}
	return res.RowsAffected, nil
}
