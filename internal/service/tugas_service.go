package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/pkg/storage"
)

// ── error modul tugas ──

var (
	ErrTugasNotFound   = errors.New("Tugas tidak ditemukan")
	ErrTargetKosong    = errors.New("Target siswa tidak ditemukan")
	ErrTargetInvalid   = errors.New("Format id_target tidak sesuai dengan target")
	ErrTanggalInvalid  = errors.New("Format tanggal tidak valid")
	ErrStorageNonaktif = errors.New("Penyimpanan file belum dikonfigurasi")
)

// TugasService pengelolaan tugas milik guru
type TugasService interface {
	// Create membuat tugas dan satu baris penugasan per siswa sasaran.
	// file boleh nil; jika ada, diunggah sebagai lampiran detail.
	Create(ctx context.Context, actor Actor, req *dto.CreateTugasRequest, file io.Reader, filename string) (*model.Tugas, error)
	ListForGuru(ctx context.Context, actor Actor) ([]dto.TugasListItem, error)
	ListForSiswa(ctx context.Context, actor Actor) ([]dto.TugasSiswaItem, error)
	// Detail daftar penugasan lengkap beserta identitas siswa dan statistik;
	// hanya guru pemilik.
	Detail(ctx context.Context, tugasID uint, actor Actor) (*model.Tugas, *dto.StatistikTugas, error)
	Update(ctx context.Context, tugasID uint, actor Actor, req *dto.UpdateTugasRequest) (*model.Tugas, error)
	Delete(ctx context.Context, tugasID uint, actor Actor) error
	// ListPending penugasan yang masih pending (belum dikumpulkan)
	ListPending(ctx context.Context, tugasID uint, actor Actor) ([]model.Penugasan, error)
}

type tugasService struct {
	repo   *repository.Repository
	files  storage.FileStore
	logger *zap.Logger
}

// NewTugasService membuat TugasService
func NewTugasService(repo *repository.Repository, files storage.FileStore, logger *zap.Logger) TugasService {
	return &tugasService{repo: repo, files: files, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *tugasService) Create(ctx context.Context, actor Actor, req *dto.CreateTugasRequest, file io.Reader, filename string) (*model.Tugas, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	siswaIDs, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	tanggalMulai, err := parseTanggal(req.TanggalMulai)
	if err != nil {
		return nil, ErrTanggalInvalid
	}
	tanggalDeadline, err := parseTanggal(req.TanggalDeadline)
	if err != nil {
		return nil, ErrTanggalInvalid
	}

	fileURL := ""
	if file != nil {
		if s.files == nil {
			return nil, ErrStorageNonaktif
		}
		key := fmt.Sprintf("tugas/%s%s", uuid.New().String(), filepath.Ext(filename))
		fileURL, err = s.files.Upload(ctx, key, file)
		if err != nil {
			s.logger.Error("gagal mengunggah lampiran tugas", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	tugas := &model.Tugas{
		Judul:           req.Judul,
		Deskripsi:       req.Deskripsi,
		IDGuru:          actor.ID,
		Target:          req.Target,
		TipePengumpulan: req.TipePengumpulan,
		FileDetail:      fileURL,
		TanggalMulai:    tanggalMulai,
		TanggalDeadline: tanggalDeadline,
		TampilkanNilai:  req.TampilkanNilai,
	}

	if err := s.repo.Tugas.CreateWithPenugasan(ctx, tugas, siswaIDs); err != nil {
		s.logger.Error("gagal membuat tugas", zap.Error(err))
		return nil, err
	}

	s.logger.Info("tugas dibuat",
		zap.Uint("id_tugas", tugas.ID),
		zap.Uint("id_guru", actor.ID),
		zap.Int("jumlah_siswa", len(siswaIDs)),
	)

	return tugas, nil
}

// resolveTarget menerjemahkan id_target menjadi daftar id siswa unik
func (s *tugasService) resolveTarget(ctx context.Context, req *dto.CreateTugasRequest) ([]uint, error) {
	var siswa []model.User

	switch req.Target {
	case model.TargetSiswa:
		ids, err := req.TargetSiswa()
		if err != nil {
			return nil, ErrTargetInvalid
		}
		siswa, err = s.repo.User.ListSiswaByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	case model.TargetKelas:
		kelasList, err := req.TargetKelas()
		if err != nil {
			return nil, ErrTargetInvalid
		}
		for _, k := range kelasList {
			perKelas, err := s.repo.User.ListSiswaByKelas(ctx, k.Kelas, k.Jurusan)
			if err != nil {
				return nil, err
			}
			siswa = append(siswa, perKelas...)
		}
	}

	seen := make(map[uint]bool, len(siswa))
	ids := make([]uint, 0, len(siswa))
	for _, u := range siswa {
		if !seen[u.ID] {
			seen[u.ID] = true
			ids = append(ids, u.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrTargetKosong
	}
	return ids, nil
}

// ────────────────────── ListForGuru ──────────────────────

func (s *tugasService) ListForGuru(ctx context.Context, actor Actor) ([]dto.TugasListItem, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	tugasList, err := s.repo.Tugas.ListByGuru(ctx, actor.ID)
	if err != nil {
		s.logger.Error("gagal mengambil daftar tugas", zap.Error(err))
		return nil, err
	}

	items := make([]dto.TugasListItem, 0, len(tugasList))
	for i := range tugasList {
		t := &tugasList[i]

		counts, err := s.repo.Penugasan.CountByStatus(ctx, t.ID)
		if err != nil {
			return nil, err
		}

		item := dto.TugasListItem{
			ID:              t.ID,
			Judul:           t.Judul,
			Target:          t.Target,
			TipePengumpulan: t.TipePengumpulan,
			DibuatPada:      t.DibuatPada.Format(time.RFC3339),
		}
		if t.TanggalDeadline != nil {
			item.TanggalDeadline = t.TanggalDeadline.Format(time.RFC3339)
		}
		item.Pending = counts[model.StatusPending]
		item.Dikirim = counts[model.StatusDikirim]
		item.Selesai = counts[model.StatusSelesai]
		item.Ditolak = counts[model.StatusDitolak]
		item.TotalSiswa = item.Pending + item.Dikirim + item.Selesai + item.Ditolak

		items = append(items, item)
	}

	return items, nil
}

// ────────────────────── ListForSiswa ──────────────────────

func (s *tugasService) ListForSiswa(ctx context.Context, actor Actor) ([]dto.TugasSiswaItem, error) {
	if !actor.IsSiswa() {
		return nil, ErrNotAuthorized
	}

	penugasanList, err := s.repo.Penugasan.ListBySiswa(ctx, actor.ID)
	if err != nil {
		s.logger.Error("gagal mengambil penugasan siswa", zap.Error(err))
		return nil, err
	}

	items := make([]dto.TugasSiswaItem, 0, len(penugasanList))
	for i := range penugasanList {
		p := &penugasanList[i]
		if p.Tugas == nil {
			continue
		}

		item := dto.TugasSiswaItem{
			ID:              p.Tugas.ID,
			Judul:           p.Tugas.Judul,
			Deskripsi:       p.Tugas.Deskripsi,
			TipePengumpulan: p.Tugas.TipePengumpulan,
			FileDetail:      p.Tugas.FileDetail,
			Status:          p.Status,
			LinkDrive:       p.LinkDrive,
			CatatanGuru:     p.CatatanGuru,
		}
		if p.Tugas.Guru != nil {
			item.Guru = p.Tugas.Guru.Name
		}
		if p.Tugas.TanggalMulai != nil {
			item.TanggalMulai = p.Tugas.TanggalMulai.Format(time.RFC3339)
		}
		if p.Tugas.TanggalDeadline != nil {
			item.TanggalDeadline = p.Tugas.TanggalDeadline.Format(time.RFC3339)
		}
		if p.TanggalPengumpulan != nil {
			item.TanggalPengumpulan = p.TanggalPengumpulan.Format(time.RFC3339)
		}
		// nilai hanya tampil bila guru mengizinkan
		if p.Tugas.TampilkanNilai {
			item.Nilai = p.Nilai
		}

		items = append(items, item)
	}

	return items, nil
}

// ────────────────────── Detail ──────────────────────

func (s *tugasService) Detail(ctx context.Context, tugasID uint, actor Actor) (*model.Tugas, *dto.StatistikTugas, error) {
	if !actor.IsGuru() {
		return nil, nil, ErrNotAuthorized
	}

	tugas, err := s.repo.Tugas.GetDetail(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTugasNotFound
		}
		s.logger.Error("gagal mengambil detail tugas", zap.Uint("id", tugasID), zap.Error(err))
		return nil, nil, err
	}

	if tugas.IDGuru != actor.ID {
		return nil, nil, ErrNotAuthorized
	}

	stat := &dto.StatistikTugas{}
	for i := range tugas.Penugasan {
		switch tugas.Penugasan[i].Status {
		case model.StatusPending:
			stat.Pending++
		case model.StatusDikirim:
			stat.Dikirim++
		case model.StatusSelesai:
			stat.Selesai++
		case model.StatusDitolak:
			stat.Ditolak++
		}
	}
	stat.TotalSiswa = int64(len(tugas.Penugasan))

	return tugas, stat, nil
}

// ────────────────────── Update ──────────────────────

func (s *tugasService) Update(ctx context.Context, tugasID uint, actor Actor, req *dto.UpdateTugasRequest) (*model.Tugas, error) {
	tugas, err := s.mustOwn(ctx, tugasID, actor)
	if err != nil {
		return nil, err
	}

	if req.Judul != nil {
		tugas.Judul = *req.Judul
	}
	if req.Deskripsi != nil {
		tugas.Deskripsi = *req.Deskripsi
	}
	if req.TanggalMulai != nil {
		t, err := parseTanggal(*req.TanggalMulai)
		if err != nil {
			return nil, ErrTanggalInvalid
		}
		tugas.TanggalMulai = t
	}
	if req.TanggalDeadline != nil {
		t, err := parseTanggal(*req.TanggalDeadline)
		if err != nil {
			return nil, ErrTanggalInvalid
		}
		tugas.TanggalDeadline = t
	}
	if req.TampilkanNilai != nil {
		tugas.TampilkanNilai = *req.TampilkanNilai
	}

	if err := s.repo.Tugas.Update(ctx, tugas); err != nil {
		s.logger.Error("gagal memperbarui tugas", zap.Uint("id", tugasID), zap.Error(err))
		return nil, err
	}

	return tugas, nil
}

// ────────────────────── Delete ──────────────────────

func (s *tugasService) Delete(ctx context.Context, tugasID uint, actor Actor) error {
	if _, err := s.mustOwn(ctx, tugasID, actor); err != nil {
		return err
	}

	if err := s.repo.Tugas.Delete(ctx, tugasID); err != nil {
		s.logger.Error("gagal menghapus tugas", zap.Uint("id", tugasID), zap.Error(err))
		return err
	}

	s.logger.Info("tugas dihapus", zap.Uint("id_tugas", tugasID), zap.Uint("id_guru", actor.ID))
	return nil
}

// ────────────────────── ListPending ──────────────────────

func (s *tugasService) ListPending(ctx context.Context, tugasID uint, actor Actor) ([]model.Penugasan, error) {
	if _, err := s.mustOwn(ctx, tugasID, actor); err != nil {
		return nil, err
	}
	return s.repo.Penugasan.ListByTugasStatus(ctx, tugasID, model.StatusPending)
}

// ── helper internal ──

// mustOwn memastikan actor adalah guru pemilik tugas
func (s *tugasService) mustOwn(ctx context.Context, tugasID uint, actor Actor) (*model.Tugas, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	tugas, err := s.repo.Tugas.GetByID(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTugasNotFound
		}
		s.logger.Error("gagal mengambil tugas", zap.Uint("id", tugasID), zap.Error(err))
		return nil, err
	}

	if tugas.IDGuru != actor.ID {
		return nil, ErrNotAuthorized
	}
	return tugas, nil
}

// parseTanggal menerima RFC 3339 atau tanggal polos "2006-01-02";
// string kosong berarti tidak diisi
func parseTanggal(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("format tanggal %q tidak dikenal", s)
}
