package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tradekit/matching-engine/pkg/oms/model"
)

type TradeSQLRepo struct {
	db *gorm.DB
}

func NewTradeSQLRepo(db *gorm.DB) *TradeSQLRepo {
	return &TradeSQLRepo{
		db: db,
	}
}

func (s *TradeSQLRepo) dbWithContext(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (r *TradeSQLRepo) Create(ctx context.Context, record *model.TradeRecord) (*model.TradeRecord, error) {
	return record, r.dbWithContext(ctx).Create(record).Error
}

func (r *TradeSQLRepo) BulkCreate(ctx context.Context, records []*model.TradeRecord) ([]*model.TradeRecord, error) {
	return records, r.dbWithContext(ctx).Create(records).Error
}
