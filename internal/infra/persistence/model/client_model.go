package model

import (
	"time"
)

// ClientModel is the GORM-specific struct for the 'clients' table.
type ClientModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null;index"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(50)"`
	Note      string `gorm:"type:text"`
	AvatarURL string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
