package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

// PenugasanRepository akses data penugasan.
//
// Transisi status wajib lewat UpdateStatusIf: UPDATE bersyarat pada status
// saat ini sebagai satu operasi atomik, supaya dua transisi yang balapan
// pada baris yang sama tidak sama-sama berhasil.
type PenugasanRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Penugasan, error)
	GetByTugasSiswa(ctx context.Context, tugasID, siswaID uint) (*model.Penugasan, error)
	ListByTugas(ctx context.Context, tugasID uint) ([]model.Penugasan, error)
	ListByTugasStatus(ctx context.Context, tugasID uint, status string) ([]model.Penugasan, error)
	ListBySiswa(ctx context.Context, siswaID uint) ([]model.Penugasan, error)
	// UpdateStatusIf menjalankan UPDATE ... WHERE id = ? AND status = ?
	// dan mengembalikan jumlah baris yang berubah (0 = prasyarat gagal).
	UpdateStatusIf(ctx context.Context, id uint, fromStatus string, updates map[string]interface{}) (int64, error)
	CountByStatus(ctx context.Context, tugasID uint) (map[string]int64, error)
}

type penugasanRepo struct {
	db *gorm.DB
}

// NewPenugasanRepo membuat PenugasanRepository
func NewPenugasanRepo(db *gorm.DB) PenugasanRepository {
	return &penugasanRepo{db: db}
}

func (r *penugasanRepo) GetByID(ctx context.Context, id uint) (*model.Penugasan, error) {
	var p model.Penugasan
	err := r.db.WithContext(ctx).
		Preload("Tugas").
		Preload("Siswa").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *penugasanRepo) GetByTugasSiswa(ctx context.Context, tugasID, siswaID uint) (*model.Penugasan, error) {
	var p model.Penugasan
	err := r.db.WithContext(ctx).
		Where("id_tugas = ? AND id_siswa = ?", tugasID, siswaID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *penugasanRepo) ListByTugas(ctx context.Context, tugasID uint) ([]model.Penugasan, error) {
	var list []model.Penugasan
	err := r.db.WithContext(ctx).
		Preload("Siswa").
		Where("id_tugas = ?", tugasID).
		Order("id").
		Find(&list).Error
	return list, err
}

func (r *penugasanRepo) ListByTugasStatus(ctx context.Context, tugasID uint, status string) ([]model.Penugasan, error) {
	var list []model.Penugasan
	err := r.db.WithContext(ctx).
		Preload("Siswa").
		Where("id_tugas = ? AND status = ?", tugasID, status).
		Order("id").
		Find(&list).Error
	return list, err
}

func (r *penugasanRepo) ListBySiswa(ctx context.Context, siswaID uint) ([]model.Penugasan, error) {
	var list []model.Penugasan
	err := r.db.WithContext(ctx).
		Preload("Tugas").
		Preload("Tugas.Guru").
		Where("id_siswa = ?", siswaID).
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *penugasanRepo) UpdateStatusIf(ctx context.Context, id uint, fromStatus string, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Penugasan{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *penugasanRepo) CountByStatus(ctx context.Context, tugasID uint) (map[string]int64, error) {
	type baris struct {
		Status string
		Jumlah int64
	}
	var rows []baris
	err := r.db.WithContext(ctx).
		Model(&model.Penugasan{}).
		Select("status, COUNT(*) AS jumlah").
		Where("id_tugas = ?", tugasID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Jumlah
	}
	return counts, nil
}
