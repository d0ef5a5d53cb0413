package model

import "time"

// ── Status penugasan ──
//
// Alur maju: pending → dikirim → {selesai, ditolak}.
// Penugasan ditolak tidak punya transisi keluar.

const (
	StatusPending = "pending" // belum dikumpulkan
	StatusDikirim = "dikirim" // sudah dikumpulkan, menunggu penilaian
	StatusSelesai = "selesai" // diterima guru, nilai terisi
	StatusDitolak = "ditolak" // ditolak guru
)

// Penugasan tabel penugasan, kewajiban satu siswa atas satu tugas.
// Tepat satu baris per pasangan (tugas, siswa). Nilai terisi jika dan
// hanya jika status selesai.
type Penugasan struct {
	IDTugas            uint       `gorm:"not null;uniqueIndex:idx_tugas_siswa" json:"id_tugas"`
	IDSiswa            uint       `gorm:"not null;uniqueIndex:idx_tugas_siswa" json:"id_siswa"`
	Status             string     `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	LinkDrive          string     `gorm:"type:varchar(500)" json:"link_drive,omitempty"`
	TanggalPengumpulan *time.Time `json:"tanggal_pengumpulan,omitempty"`
	Nilai              *int       `json:"nilai,omitempty"` // 0-100, hanya status selesai
	CatatanGuru        string     `gorm:"type:text" json:"catatan_guru,omitempty"`
	BaseModel

	// relasi
	Tugas *Tugas `gorm:"foreignKey:IDTugas" json:"tugas,omitempty"`
	Siswa *User  `gorm:"foreignKey:IDSiswa" json:"siswa,omitempty"`
}

// TableName nama tabel
func (Penugasan) TableName() string { return "penugasan" }
