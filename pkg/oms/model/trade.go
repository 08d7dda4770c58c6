package model

import "time"

// TradeRecord is the persisted form of one execution.
type TradeRecord struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Symbol      string `gorm:"index"`
	BuyOrderID  uint64
	SellOrderID uint64
	Price       int64 // ticks
	Qty         int64
	TradedAt    time.Time
}

func (TradeRecord) TableName() string {
	return "trades"
}
