package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

// KelasRekap satu kombinasi kelas+jurusan beserta jumlah siswanya
type KelasRekap struct {
	Kelas       string
	Jurusan     string
	JumlahSiswa int64
}

// UserRepository akses data pengguna
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListSiswa(ctx context.Context) ([]model.User, error)
	ListSiswaByIDs(ctx context.Context, ids []uint) ([]model.User, error)
	ListSiswaByKelas(ctx context.Context, kelas, jurusan string) ([]model.User, error)
	ListKelas(ctx context.Context) ([]KelasRekap, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo membuat UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListSiswa(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ?", model.RoleSiswa).
		Order("kelas, jurusan, name").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListSiswaByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND id IN ?", model.RoleSiswa, ids).
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListSiswaByKelas(ctx context.Context, kelas, jurusan string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND kelas = ? AND jurusan = ?", model.RoleSiswa, kelas, jurusan).
		Order("name").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListKelas(ctx context.Context) ([]KelasRekap, error) {
	var rekap []KelasRekap
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("kelas, jurusan, COUNT(*) AS jumlah_siswa").
		Where("role = ?", model.RoleSiswa).
		Group("kelas, jurusan").
		Order("kelas, jurusan").
		Scan(&rekap).Error
	return rekap, err
}
