package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

// ReminderRepository akses data catatan pengingat bot
type ReminderRepository interface {
	Create(ctx context.Context, log *model.ReminderLog) error
	ListByTugas(ctx context.Context, tugasID uint) ([]model.ReminderLog, error)
}

type reminderRepo struct {
	db *gorm.DB
}

// NewReminderRepo membuat ReminderRepository
func NewReminderRepo(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, log *model.ReminderLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *reminderRepo) ListByTugas(ctx context.Context, tugasID uint) ([]model.ReminderLog, error) {
	var logs []model.ReminderLog
	err := r.db.WithContext(ctx).
		Preload("Siswa").
		Where("id_tugas = ?", tugasID).
		Order("dikirim_pada DESC").
		Find(&logs).Error
	return logs, err
}
