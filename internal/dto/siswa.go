package dto

// ── DTO modul siswa ──

// SiswaItem identitas ringkas siswa
type SiswaItem struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Kelas    string `json:"kelas"`
	Jurusan  string `json:"jurusan"`
}

// KelasInfo satu kelas+jurusan beserta jumlah siswanya
type KelasInfo struct {
	Kelas       string `json:"kelas"`
	Jurusan     string `json:"jurusan"`
	JumlahSiswa int64  `json:"jumlah_siswa"`
}

// SiswaByKelasRequest pencarian siswa per kelas
type SiswaByKelasRequest struct {
	Kelas   string `json:"kelas"   binding:"required"`
	Jurusan string `json:"jurusan" binding:"required"`
}

// SiswaByKelasResponse hasil pencarian siswa per kelas
type SiswaByKelasResponse struct {
	Pencarian SiswaByKelasRequest `json:"pencarian"`
	Ditemukan int                 `json:"ditemukan"`
	Data      []SiswaItem         `json:"data"`
}
