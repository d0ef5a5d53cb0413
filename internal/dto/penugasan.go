package dto

// ── DTO modul penugasan ──

// SubmitRequest pengumpulan tugas oleh siswa.
// LinkDrive wajib untuk tugas tipe link, diabaikan untuk tipe langsung.
type SubmitRequest struct {
	LinkDrive string `json:"link_drive"`
}

// GradeRequest penilaian pengumpulan oleh guru
type GradeRequest struct {
	Status      string `json:"status"       binding:"required,oneof=selesai ditolak"`
	Nilai       *int   `json:"nilai"`
	CatatanGuru string `json:"catatan_guru"`
}
