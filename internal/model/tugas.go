package model

import "time"

// ── Target dan tipe pengumpulan tugas ──

const (
	TargetSiswa = "siswa" // ditujukan ke daftar siswa tertentu
	TargetKelas = "kelas" // ditujukan ke seluruh siswa pada kelas+jurusan

	PengumpulanLink     = "link"     // kumpul via link drive
	PengumpulanLangsung = "langsung" // kumpul langsung ke guru
)

// Tugas tabel tugas, definisi tugas yang dibuat guru.
// TipePengumpulan bersifat immutable setelah dibuat: mengubahnya akan
// merusak makna penugasan yang sudah berjalan.
type Tugas struct {
	Judul           string     `gorm:"type:varchar(200);not null"        json:"judul"`
	Deskripsi       string     `gorm:"type:text"                         json:"deskripsi,omitempty"`
	IDGuru          uint       `gorm:"not null;index"                    json:"id_guru"`
	Target          string     `gorm:"type:varchar(10);not null"         json:"target"`            // siswa | kelas
	TipePengumpulan string     `gorm:"type:varchar(10);not null"         json:"tipe_pengumpulan"`  // link | langsung
	FileDetail      string     `gorm:"type:varchar(500)"                 json:"file_detail,omitempty"`
	TanggalMulai    *time.Time `json:"tanggal_mulai,omitempty"`
	TanggalDeadline *time.Time `json:"tanggal_deadline,omitempty"`
	TampilkanNilai  bool       `gorm:"not null;default:false"            json:"tampilkan_nilai"`
	BaseModel

	// relasi
	Guru      *User       `gorm:"foreignKey:IDGuru"  json:"guru,omitempty"`
	Penugasan []Penugasan `gorm:"foreignKey:IDTugas" json:"penugasan,omitempty"`
}

// TableName nama tabel
func (Tugas) TableName() string { return "tugas" }
