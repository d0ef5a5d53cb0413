package repository

import "gorm.io/gorm"

// Repository agregat seluruh repository
type Repository struct {
	User      UserRepository
	Tugas     TugasRepository
	Penugasan PenugasanRepository
	Reminder  ReminderRepository
}

// NewRepository membuat agregat Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:      NewUserRepo(db),
		Tugas:     NewTugasRepo(db),
		Penugasan: NewPenugasanRepo(db),
		Reminder:  NewReminderRepo(db),
	}
}
