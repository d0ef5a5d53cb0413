package model

import "time"

// BaseModel kolom audit umum (disematkan semua model bisnis)
type BaseModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DibuatPada     time.Time `gorm:"autoCreateTime;not null"  json:"dibuat_pada"`
	DiperbaruiPada time.Time `gorm:"autoUpdateTime;not null"  json:"diperbarui_pada"`
}
