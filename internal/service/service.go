package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/pkg/gemini"
	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
	"github.com/putraaxzy/Artemis-PKL/pkg/storage"
)

// ── error lintas modul ──

var (
	// ErrNotAuthorized penolakan generik: tidak membocorkan ada/tidaknya
	// resource kepada pemanggil yang tidak berhak.
	ErrNotAuthorized = errors.New("Kamu tidak berhak melakukan aksi ini")

	// ErrUpstream layanan eksternal gagal atau timeout
	ErrUpstream = errors.New("Terjadi kesalahan saat memproses permintaan")
)

// Actor identitas pemanggil yang sudah terautentikasi, diteruskan eksplisit
// ke setiap operasi. Pemeriksaan hak ada di titik masuk service, bukan
// tersebar di handler.
type Actor struct {
	ID   uint
	Role string
}

// IsGuru true bila actor berperan guru
func (a Actor) IsGuru() bool { return a.Role == model.RoleGuru }

// IsSiswa true bila actor berperan siswa
func (a Actor) IsSiswa() bool { return a.Role == model.RoleSiswa }

// Service agregat seluruh service
type Service struct {
	Auth      AuthService
	Tugas     TugasService
	Penugasan PenugasanService
	Chat      ChatService
	Export    ExportService
	Siswa     SiswaService
	Reminder  ReminderService
}

// NewService membuat agregat Service
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	chatter gemini.Chatter,
	files storage.FileStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Tugas:     NewTugasService(repo, files, logger),
		Penugasan: NewPenugasanService(repo, logger),
		Chat:      NewChatService(repo, chatter, logger),
		Export:    NewExportService(repo, logger),
		Siswa:     NewSiswaService(repo, logger),
		Reminder:  NewReminderService(repo, rdb, logger),
	}
}
