package dao

import (
	"context"

	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager binds a gorm transaction to a context so DAOs share it.
type TxManager struct {
	Db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{Db: db}
}

// RunInTx runs fn inside one transaction. Nested calls reuse the outer one.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	err := m.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	return errs.Infra("transaction", err)
}

func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
