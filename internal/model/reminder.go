package model

import "time"

// ReminderLog tabel reminder_log, catatan pengingat yang sudah dikirim bot
// ke siswa yang penugasannya masih pending.
type ReminderLog struct {
	IDTugas      uint      `gorm:"not null;index"             json:"id_tugas"`
	IDSiswa      uint      `gorm:"not null;index"             json:"id_siswa"`
	Pesan        string    `gorm:"type:text;not null"         json:"pesan"`
	IDPesan      string    `gorm:"type:varchar(100);not null" json:"id_pesan"` // id pesan dari WA bot
	DikirimPada  time.Time `gorm:"autoCreateTime;not null"    json:"dikirim_pada"`
	BaseModel

	// relasi
	Siswa *User `gorm:"foreignKey:IDSiswa" json:"siswa,omitempty"`
}

// TableName nama tabel
func (ReminderLog) TableName() string { return "reminder_log" }
