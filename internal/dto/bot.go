package dto

// ── DTO modul bot reminder ──

// RecordReminderRequest catatan pengingat yang sudah terkirim dari WA bot
type RecordReminderRequest struct {
	IDTugas uint   `json:"id_tugas" binding:"required"`
	IDSiswa uint   `json:"id_siswa" binding:"required"`
	Pesan   string `json:"pesan"    binding:"required"`
	IDPesan string `json:"id_pesan" binding:"required"`
}
