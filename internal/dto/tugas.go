package dto

import "encoding/json"

// ── DTO modul tugas ──

// KelasTarget satu pasangan kelas+jurusan sebagai sasaran tugas
type KelasTarget struct {
	Kelas   string `json:"kelas"   binding:"required"`
	Jurusan string `json:"jurusan" binding:"required"`
}

// CreateTugasRequest pembuatan tugas baru.
// IDTarget berbentuk daftar id siswa (target=siswa) atau daftar
// {kelas, jurusan} (target=kelas); pada multipart form field ini
// dikirim sebagai string JSON.
type CreateTugasRequest struct {
	Judul           string          `json:"judul"            form:"judul"            binding:"required,min=3,max=200"`
	Deskripsi       string          `json:"deskripsi"        form:"deskripsi"`
	Target          string          `json:"target"           form:"target"           binding:"required,oneof=siswa kelas"`
	IDTarget        json.RawMessage `json:"id_target"        form:"id_target"        binding:"required"`
	TipePengumpulan string          `json:"tipe_pengumpulan" form:"tipe_pengumpulan" binding:"required,oneof=link langsung"`
	TanggalMulai    string          `json:"tanggal_mulai"    form:"tanggal_mulai"`    // RFC 3339
	TanggalDeadline string          `json:"tanggal_deadline" form:"tanggal_deadline"` // RFC 3339
	TampilkanNilai  bool            `json:"tampilkan_nilai"  form:"tampilkan_nilai"`
}

// TargetSiswa menafsirkan IDTarget sebagai daftar id siswa
func (r *CreateTugasRequest) TargetSiswa() ([]uint, error) {
	var ids []uint
	err := json.Unmarshal(r.IDTarget, &ids)
	return ids, err
}

// TargetKelas menafsirkan IDTarget sebagai daftar kelas+jurusan
func (r *CreateTugasRequest) TargetKelas() ([]KelasTarget, error) {
	var kelas []KelasTarget
	err := json.Unmarshal(r.IDTarget, &kelas)
	return kelas, err
}

// UpdateTugasRequest pembaruan tugas. TipePengumpulan sengaja tidak ada:
// immutable setelah tugas dibuat.
type UpdateTugasRequest struct {
	Judul           *string `json:"judul"            form:"judul"            binding:"omitempty,min=3,max=200"`
	Deskripsi       *string `json:"deskripsi"        form:"deskripsi"`
	TanggalMulai    *string `json:"tanggal_mulai"    form:"tanggal_mulai"`
	TanggalDeadline *string `json:"tanggal_deadline" form:"tanggal_deadline"`
	TampilkanNilai  *bool   `json:"tampilkan_nilai"  form:"tampilkan_nilai"`
}

// StatistikTugas rekap jumlah penugasan per status
type StatistikTugas struct {
	TotalSiswa int64 `json:"total_siswa"`
	Pending    int64 `json:"pending"`
	Dikirim    int64 `json:"dikirim"`
	Selesai    int64 `json:"selesai"`
	Ditolak    int64 `json:"ditolak"`
}

// TugasListItem ringkasan tugas pada daftar milik guru
type TugasListItem struct {
	ID              uint   `json:"id"`
	Judul           string `json:"judul"`
	Target          string `json:"target"`
	TipePengumpulan string `json:"tipe_pengumpulan"`
	TanggalDeadline string `json:"tanggal_deadline,omitempty"`
	DibuatPada      string `json:"dibuat_pada"`
	StatistikTugas
}

// TugasSiswaItem sudut pandang siswa: tugas beserta status penugasannya
type TugasSiswaItem struct {
	ID                 uint   `json:"id"`
	Judul              string `json:"judul"`
	Deskripsi          string `json:"deskripsi,omitempty"`
	Guru               string `json:"guru,omitempty"`
	TipePengumpulan    string `json:"tipe_pengumpulan"`
	FileDetail         string `json:"file_detail,omitempty"`
	TanggalMulai       string `json:"tanggal_mulai,omitempty"`
	TanggalDeadline    string `json:"tanggal_deadline,omitempty"`
	Status             string `json:"status"`
	LinkDrive          string `json:"link_drive,omitempty"`
	TanggalPengumpulan string `json:"tanggal_pengumpulan,omitempty"`
	Nilai              *int   `json:"nilai,omitempty"` // disembunyikan jika tampilkan_nilai=false
	CatatanGuru        string `json:"catatan_guru,omitempty"`
}
