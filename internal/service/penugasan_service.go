package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
)

// ── error modul penugasan ──

var (
	ErrTransisiStatus = errors.New("Status penugasan tidak memungkinkan aksi ini")
	ErrLinkWajib      = errors.New("Link drive wajib diisi untuk tugas tipe link")
	ErrNilaiWajib     = errors.New("Nilai wajib diisi saat menerima pengumpulan")
	ErrNilaiRentang   = errors.New("Nilai harus di antara 0 sampai 100")
)

// PenugasanService mesin siklus hidup penugasan.
//
// Alur status: pending → dikirim → {selesai, ditolak}. Penugasan ditolak
// tidak punya transisi keluar. Setiap transisi dieksekusi sebagai UPDATE
// bersyarat pada status asal, sehingga dua aksi yang balapan pada baris
// yang sama hanya satu yang berhasil.
type PenugasanService interface {
	// Submit pengumpulan oleh siswa: pending → dikirim
	Submit(ctx context.Context, tugasID uint, actor Actor, linkDrive string) (*model.Penugasan, error)
	// Grade penilaian oleh guru pemilik tugas: dikirim → {selesai, ditolak}
	Grade(ctx context.Context, penugasanID uint, actor Actor, req *dto.GradeRequest) (*model.Penugasan, error)
	// Statistics rekap jumlah penugasan per status untuk satu tugas
	Statistics(ctx context.Context, tugasID uint) (*dto.StatistikTugas, error)
}

type penugasanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPenugasanService membuat PenugasanService
func NewPenugasanService(repo *repository.Repository, logger *zap.Logger) PenugasanService {
	return &penugasanService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *penugasanService) Submit(ctx context.Context, tugasID uint, actor Actor, linkDrive string) (*model.Penugasan, error) {
	if !actor.IsSiswa() {
		return nil, ErrNotAuthorized
	}

	tugas, err := s.repo.Tugas.GetByID(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		s.logger.Error("gagal mengambil tugas", zap.Uint("id_tugas", tugasID), zap.Error(err))
		return nil, err
	}

	// penugasan dicari lewat pasangan (tugas, siswa); baris yang tidak ada
	// berarti tugas ini bukan untuk siswa tersebut
	penugasan, err := s.repo.Penugasan.GetByTugasSiswa(ctx, tugasID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		s.logger.Error("gagal mengambil penugasan", zap.Uint("id_tugas", tugasID), zap.Error(err))
		return nil, err
	}

	linkDrive = strings.TrimSpace(linkDrive)
	switch tugas.TipePengumpulan {
	case model.PengumpulanLink:
		if linkDrive == "" {
			return nil, ErrLinkWajib
		}
	case model.PengumpulanLangsung:
		linkDrive = "" // diabaikan untuk pengumpulan langsung
	}

	if penugasan.Status != model.StatusPending {
		return nil, ErrTransisiStatus
	}

	// waktu pengumpulan dicatat saat transisi diterima mesin, bukan saat
	// request dikirim klien
	now := time.Now()
	updates := map[string]interface{}{
		"status":              model.StatusDikirim,
		"link_drive":          linkDrive,
		"tanggal_pengumpulan": now,
		"diperbarui_pada":     now,
	}

	rows, err := s.repo.Penugasan.UpdateStatusIf(ctx, penugasan.ID, model.StatusPending, updates)
	if err != nil {
		s.logger.Error("gagal update status penugasan", zap.Uint("id", penugasan.ID), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		// status sudah berubah di tengah jalan
		return nil, ErrTransisiStatus
	}

	return s.repo.Penugasan.GetByID(ctx, penugasan.ID)
}

// ────────────────────── Grade ──────────────────────

func (s *penugasanService) Grade(ctx context.Context, penugasanID uint, actor Actor, req *dto.GradeRequest) (*model.Penugasan, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	penugasan, err := s.repo.Penugasan.GetByID(ctx, penugasanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		s.logger.Error("gagal mengambil penugasan", zap.Uint("id", penugasanID), zap.Error(err))
		return nil, err
	}

	if penugasan.Tugas == nil || penugasan.Tugas.IDGuru != actor.ID {
		return nil, ErrNotAuthorized
	}

	var nilai *int
	switch req.Status {
	case model.StatusSelesai:
		if req.Nilai == nil {
			return nil, ErrNilaiWajib
		}
		if *req.Nilai < 0 || *req.Nilai > 100 {
			return nil, ErrNilaiRentang
		}
		nilai = req.Nilai
	case model.StatusDitolak:
		nilai = nil // nilai dibuang meskipun dikirim klien
	default:
		return nil, ErrTransisiStatus
	}

	if penugasan.Status != model.StatusDikirim {
		return nil, ErrTransisiStatus
	}

	updates := map[string]interface{}{
		"status":          req.Status,
		"nilai":           nilai,
		"catatan_guru":    req.CatatanGuru,
		"diperbarui_pada": time.Now(),
	}

	rows, err := s.repo.Penugasan.UpdateStatusIf(ctx, penugasan.ID, model.StatusDikirim, updates)
	if err != nil {
		s.logger.Error("gagal update status penugasan", zap.Uint("id", penugasan.ID), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		// penilaian lain menang balapan
		return nil, ErrTransisiStatus
	}

	return s.repo.Penugasan.GetByID(ctx, penugasan.ID)
}

// ────────────────────── Statistics ──────────────────────

func (s *penugasanService) Statistics(ctx context.Context, tugasID uint) (*dto.StatistikTugas, error) {
	counts, err := s.repo.Penugasan.CountByStatus(ctx, tugasID)
	if err != nil {
		s.logger.Error("gagal menghitung statistik", zap.Uint("id_tugas", tugasID), zap.Error(err))
		return nil, err
	}

	stat := &dto.StatistikTugas{
		Pending: counts[model.StatusPending],
		Dikirim: counts[model.StatusDikirim],
		Selesai: counts[model.StatusSelesai],
		Ditolak: counts[model.StatusDitolak],
	}
	stat.TotalSiswa = stat.Pending + stat.Dikirim + stat.Selesai + stat.Ditolak
	return stat, nil
}
