package dto

// ── DTO modul chat AI ──

// ChatRequest pertanyaan siswa, opsional dengan konteks satu tugas
type ChatRequest struct {
	Message string `json:"message"  binding:"required,max=2000"`
	IDTugas *uint  `json:"id_tugas"`
}

// ChatResponse jawaban mentah model beserta jenis konteks yang dipakai
type ChatResponse struct {
	Response string `json:"response"`
	Context  string `json:"context"` // "tugas" | "general"
}
