package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

// TugasRepository akses data tugas
type TugasRepository interface {
	// CreateWithPenugasan menyimpan tugas beserta seluruh baris penugasan
	// dalam satu transaksi.
	CreateWithPenugasan(ctx context.Context, tugas *model.Tugas, siswaIDs []uint) error
	GetByID(ctx context.Context, id uint) (*model.Tugas, error)
	GetDetail(ctx context.Context, id uint) (*model.Tugas, error)
	ListByGuru(ctx context.Context, guruID uint) ([]model.Tugas, error)
	Update(ctx context.Context, tugas *model.Tugas) error
	Delete(ctx context.Context, id uint) error
}

type tugasRepo struct {
	db *gorm.DB
}

// NewTugasRepo membuat TugasRepository
func NewTugasRepo(db *gorm.DB) TugasRepository {
	return &tugasRepo{db: db}
}

func (r *tugasRepo) CreateWithPenugasan(ctx context.Context, tugas *model.Tugas, siswaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tugas).Error; err != nil {
			return err
		}

		penugasan := make([]model.Penugasan, 0, len(siswaIDs))
		for _, id := range siswaIDs {
			penugasan = append(penugasan, model.Penugasan{
				IDTugas: tugas.ID,
				IDSiswa: id,
				Status:  model.StatusPending,
			})
		}
		if len(penugasan) == 0 {
			return nil
		}
		return tx.Create(&penugasan).Error
	})
}

func (r *tugasRepo) GetByID(ctx context.Context, id uint) (*model.Tugas, error) {
	var tugas model.Tugas
	err := r.db.WithContext(ctx).
		Preload("Guru").
		First(&tugas, id).Error
	if err != nil {
		return nil, err
	}
	return &tugas, nil
}

func (r *tugasRepo) GetDetail(ctx context.Context, id uint) (*model.Tugas, error) {
	var tugas model.Tugas
	err := r.db.WithContext(ctx).
		Preload("Guru").
		Preload("Penugasan", func(db *gorm.DB) *gorm.DB {
			return db.Order("penugasan.id")
		}).
		Preload("Penugasan.Siswa").
		First(&tugas, id).Error
	if err != nil {
		return nil, err
	}
	return &tugas, nil
}

func (r *tugasRepo) ListByGuru(ctx context.Context, guruID uint) ([]model.Tugas, error) {
	var tugas []model.Tugas
	err := r.db.WithContext(ctx).
		Where("id_guru = ?", guruID).
		Order("dibuat_pada DESC").
		Find(&tugas).Error
	return tugas, err
}

func (r *tugasRepo) Update(ctx context.Context, tugas *model.Tugas) error {
	return r.db.WithContext(ctx).Save(tugas).Error
}

func (r *tugasRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_tugas = ?", id).Delete(&model.Penugasan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tugas{}, id).Error
	})
}
