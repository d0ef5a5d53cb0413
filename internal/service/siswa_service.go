package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
)

// SiswaService kueri identitas siswa untuk kebutuhan guru
// (memilih sasaran tugas, menampilkan daftar kelas).
type SiswaService interface {
	List(ctx context.Context, actor Actor) ([]dto.SiswaItem, error)
	ListKelas(ctx context.Context, actor Actor) ([]dto.KelasInfo, error)
	ByKelas(ctx context.Context, actor Actor, req *dto.SiswaByKelasRequest) (*dto.SiswaByKelasResponse, error)
}

type siswaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSiswaService membuat SiswaService
func NewSiswaService(repo *repository.Repository, logger *zap.Logger) SiswaService {
	return &siswaService{repo: repo, logger: logger}
}

func (s *siswaService) List(ctx context.Context, actor Actor) ([]dto.SiswaItem, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	users, err := s.repo.User.ListSiswa(ctx)
	if err != nil {
		s.logger.Error("gagal mengambil daftar siswa", zap.Error(err))
		return nil, err
	}
	return toSiswaItems(users), nil
}

func (s *siswaService) ListKelas(ctx context.Context, actor Actor) ([]dto.KelasInfo, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	rekap, err := s.repo.User.ListKelas(ctx)
	if err != nil {
		s.logger.Error("gagal mengambil daftar kelas", zap.Error(err))
		return nil, err
	}

	infos := make([]dto.KelasInfo, 0, len(rekap))
	for _, r := range rekap {
		infos = append(infos, dto.KelasInfo{
			Kelas:       r.Kelas,
			Jurusan:     r.Jurusan,
			JumlahSiswa: r.JumlahSiswa,
		})
	}
	return infos, nil
}

func (s *siswaService) ByKelas(ctx context.Context, actor Actor, req *dto.SiswaByKelasRequest) (*dto.SiswaByKelasResponse, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	users, err := s.repo.User.ListSiswaByKelas(ctx, req.Kelas, req.Jurusan)
	if err != nil {
		s.logger.Error("gagal mencari siswa per kelas", zap.Error(err))
		return nil, err
	}

	items := toSiswaItems(users)
	return &dto.SiswaByKelasResponse{
		Pencarian: *req,
		Ditemukan: len(items),
		Data:      items,
	}, nil
}

func toSiswaItems(users []model.User) []dto.SiswaItem {
	items := make([]dto.SiswaItem, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, dto.SiswaItem{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Kelas:    u.Kelas,
			Jurusan:  u.Jurusan,
		})
	}
	return items
}
