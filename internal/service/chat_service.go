package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/pkg/gemini"
)

// systemPrompt persona Artemis, dikirim sebagai giliran pembuka setiap
// percakapan. Tidak bisa ditimpa dari luar.
const systemPrompt = `Kamu adalah Artemis, asisten AI cerdas untuk sistem pendidikan ArtemisSMEA.
Tugasmu adalah membantu siswa memahami materi dan tugas yang diberikan guru.

Prinsip-prinsip yang harus kamu ikuti:
1. Jelaskan dengan bahasa yang mudah dipahami siswa Indonesia
2. Gunakan pendekatan interaktif - ajukan pertanyaan balik untuk memastikan pemahaman
3. Berikan contoh relevan dan analogi yang mudah dimengerti
4. JANGAN memberikan jawaban langsung untuk tugas, tapi bimbing siswa menemukan jawabannya sendiri
5. Motivasi dan apresiasi usaha siswa
6. Jika siswa bertanya di luar konteks pembelajaran, arahkan kembali ke topik pendidikan dengan sopan
7. Gunakan emoji secukupnya untuk membuat percakapan lebih ramah 😊

Ingat: Tujuanmu adalah membuat siswa MENGERTI, bukan sekedar memberikan jawaban.`

// acknowledgment giliran sintetis "model" setelah persona, untuk mengarahkan
// kelanjutan percakapan agar patuh pada instruksi
const acknowledgment = "Baik, saya siap membantu siswa ArtemisSMEA dengan pendekatan pembelajaran interaktif!"

const (
	markerBuka  = "[KONTEKS TUGAS]"
	markerTutup = "[/KONTEKS TUGAS]"
)

// ChatService perakit konteks + penerus chat ke model generatif.
// Stateless antar request: setiap panggilan adalah percakapan baru
// berisi persona, ack sintetis, lalu satu giliran user.
type ChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	// BuildPrompt merakit prompt akhir; idTugas nil atau tidak dikenal
	// mengembalikan pesan apa adanya.
	BuildPrompt(ctx context.Context, message string, idTugas *uint) (string, bool)
}

type chatService struct {
	repo    *repository.Repository
	chatter gemini.Chatter
	logger  *zap.Logger
}

// NewChatService membuat ChatService
func NewChatService(repo *repository.Repository, chatter gemini.Chatter, logger *zap.Logger) ChatService {
	return &chatService{repo: repo, chatter: chatter, logger: logger}
}

// ────────────────────── BuildPrompt ──────────────────────

func (s *chatService) BuildPrompt(ctx context.Context, message string, idTugas *uint) (string, bool) {
	if idTugas == nil {
		return message, false
	}

	tugas, err := s.repo.Tugas.GetByID(ctx, *idTugas)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("gagal mengambil tugas untuk konteks chat",
				zap.Uint("id_tugas", *idTugas), zap.Error(err))
		}
		return message, false
	}

	namaGuru := ""
	if tugas.Guru != nil {
		namaGuru = tugas.Guru.Name
	}

	deadline := "-"
	if tugas.TanggalDeadline != nil {
		deadline = tugas.TanggalDeadline.Format("02 Jan 2006 15:04")
	}

	var b strings.Builder
	b.WriteString("\n\n" + markerBuka + "\n")
	fmt.Fprintf(&b, "Judul: %s\n", sanitize(tugas.Judul))
	fmt.Fprintf(&b, "Deskripsi: %s\n", sanitize(tugas.Deskripsi))
	fmt.Fprintf(&b, "Guru: %s\n", sanitize(namaGuru))
	fmt.Fprintf(&b, "Tipe Pengumpulan: %s\n", tugas.TipePengumpulan)
	fmt.Fprintf(&b, "Deadline: %s\n", deadline)
	b.WriteString(markerTutup + "\n\n")
	b.WriteString("Pertanyaan siswa: " + message)

	return b.String(), true
}

// sanitize membuang string penanda dari field tugas agar penanda konteks
// muncul tepat satu kali pada prompt, meskipun isi field mengandung teks
// penanda (pencegahan prompt injection lewat deskripsi tugas). Pembuangan
// diulang sampai bersih: satu lintasan bisa menyatukan kembali pecahan
// penanda, misal "[KONTEKS [KONTEKS TUGAS]TUGAS]".
func sanitize(field string) string {
	for strings.Contains(field, markerBuka) || strings.Contains(field, markerTutup) {
		field = strings.ReplaceAll(field, markerBuka, "")
		field = strings.ReplaceAll(field, markerTutup, "")
	}
	return field
}

// ────────────────────── Chat ──────────────────────

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	prompt, pakaiKonteks := s.BuildPrompt(ctx, req.Message, req.IDTugas)

	history := []gemini.Content{
		gemini.NewContent("user", systemPrompt),
		gemini.NewContent("model", acknowledgment),
	}

	text, err := s.chatter.SendChat(ctx, history, prompt)
	if err != nil {
		s.logger.Error("panggilan model generatif gagal", zap.Error(err))
		// detail teknis dibawa untuk mode debug, pesan generik untuk klien
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	kontext := "general"
	if pakaiKonteks {
		kontext = "tugas"
	}

	return &dto.ChatResponse{Response: text, Context: kontext}, nil
}
