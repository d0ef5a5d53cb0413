package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
)

// ── error modul pengingat ──

var (
	ErrReminderNonaktif = errors.New("Layanan pengingat sedang tidak tersedia")
	ErrTidakAdaPending  = errors.New("Tidak ada siswa dengan status pending")
)

// ReminderService antrean pengingat WA untuk siswa yang belum mengumpulkan.
// Pengiriman pesan dilakukan bot terpisah yang membaca antrean Redis,
// lalu mencatat hasilnya kembali lewat Record.
type ReminderService interface {
	SendReminders(ctx context.Context, tugasID uint, actor Actor) (int, error)
	Record(ctx context.Context, req *dto.RecordReminderRequest) error
	History(ctx context.Context, tugasID uint, actor Actor) ([]model.ReminderLog, error)
}

type reminderService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewReminderService membuat ReminderService
func NewReminderService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) ReminderService {
	return &reminderService{repo: repo, rdb: rdb, logger: logger}
}

// SendReminders mengantre pengingat untuk semua penugasan pending milik tugas.
// Mengembalikan jumlah job yang masuk antrean.
func (s *reminderService) SendReminders(ctx context.Context, tugasID uint, actor Actor) (int, error) {
	if !actor.IsGuru() {
		return 0, ErrNotAuthorized
	}
	if s.rdb == nil {
		return 0, ErrReminderNonaktif
	}

	tugas, err := s.repo.Tugas.GetByID(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTugasNotFound
		}
		return 0, err
	}
	if tugas.IDGuru != actor.ID {
		return 0, ErrNotAuthorized
	}

	pending, err := s.repo.Penugasan.ListByTugasStatus(ctx, tugasID, model.StatusPending)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, ErrTidakAdaPending
	}

	queued := 0
	for i := range pending {
		p := &pending[i]
		if p.Siswa == nil || p.Siswa.Telepon == "" {
			continue
		}
		job := &redis.ReminderJob{
			IDTugas: tugasID,
			IDSiswa: p.IDSiswa,
			Telepon: p.Siswa.Telepon,
			Judul:   tugas.Judul,
		}
		if err := s.rdb.EnqueueReminder(ctx, job); err != nil {
			s.logger.Warn("gagal mengantre pengingat",
				zap.Uint("id_tugas", tugasID),
				zap.Uint("id_siswa", p.IDSiswa),
				zap.Error(err))
			continue
		}
		queued++
	}

	s.logger.Info("pengingat diantre",
		zap.Uint("id_tugas", tugasID),
		zap.Int("jumlah", queued))
	return queued, nil
}

// Record mencatat pengingat yang sudah dikirim bot.
func (s *reminderService) Record(ctx context.Context, req *dto.RecordReminderRequest) error {
	log := &model.ReminderLog{
		IDTugas:     req.IDTugas,
		IDSiswa:     req.IDSiswa,
		Pesan:       req.Pesan,
		IDPesan:     req.IDPesan,
		DikirimPada: time.Now(),
	}
	return s.repo.Reminder.Create(ctx, log)
}

// History mengembalikan riwayat pengingat satu tugas, terbaru dulu.
func (s *reminderService) History(ctx context.Context, tugasID uint, actor Actor) ([]model.ReminderLog, error) {
	if !actor.IsGuru() {
		return nil, ErrNotAuthorized
	}

	tugas, err := s.repo.Tugas.GetByID(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTugasNotFound
		}
		return nil, err
	}
	if tugas.IDGuru != actor.ID {
		return nil, ErrNotAuthorized
	}

	return s.repo.Reminder.ListByTugas(ctx, tugasID)
}
