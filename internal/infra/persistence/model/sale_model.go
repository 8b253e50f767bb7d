package model

import (
	"time"
)

// SaleModel is the GORM-specific struct for the 'sales' table.
type SaleModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	ClientID    string    `gorm:"type:varchar(64)"`
	Description string    `gorm:"type:text"`
	Total       float64   `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Date        string    `gorm:"type:varchar(10)"`
	Time        string    `gorm:"type:varchar(8)"`
	UserID      string    `gorm:"type:varchar(128);not null;index:idx_sales_user_created,priority:1"`
	CreatedAt   time.Time `gorm:"index:idx_sales_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// All lists every table of the relational store in migration order.
func All() []any {
	return []any{
		&ClientModel{},
		&EventModel{},
		&NotificationModel{},
		&SaleModel{},
		&UserDeviceModel{},
	}
}
