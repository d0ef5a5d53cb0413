package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
)

// ── error modul autentikasi ──

var (
	ErrKredensialSalah = errors.New("Username atau password salah")
	ErrUsernameDipakai = errors.New("Username sudah terdaftar")
	ErrUserNotFound    = errors.New("Pengguna tidak ditemukan")
	ErrRefreshInvalid  = errors.New("Refresh token tidak valid")
)

// AuthService autentikasi dan sesi
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// Refresh menukar refresh token yang sah dengan pasangan token baru
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error)
	// Logout memasukkan JTI token ke blacklist sampai token kedaluwarsa
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, userID uint) (*model.User, error)
	// RegisterOptions pilihan kelas dan jurusan yang tersedia
	RegisterOptions(ctx context.Context) (*dto.RegisterOptionsResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService membuat AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// pendaftaran mandiri hanya untuk siswa; akun guru dibuat admin
	if req.Role != model.RoleSiswa {
		return nil, ErrNotAuthorized
	}

	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameDipakai
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("gagal memeriksa username", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Name:         req.Name,
		Telepon:      req.Telepon,
		PasswordHash: string(hash),
		Role:         model.RoleSiswa,
		Kelas:        req.Kelas,
		Jurusan:      req.Jurusan,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("gagal membuat pengguna", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(user)
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKredensialSalah
		}
		s.logger.Error("gagal mengambil pengguna", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrKredensialSalah
	}

	return s.issueTokens(user)
}

// issueTokens menerbitkan pasangan access + refresh token untuk pengguna
func (s *authService) issueTokens(user *model.User) (*dto.AuthResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("gagal menerbitkan access token", zap.Error(err))
		return nil, err
	}

	refresh, err := s.jwtMgr.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("gagal menerbitkan refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.AuthResponse{Token: access, RefreshToken: refresh, Pengguna: user}, nil
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	if s.rdb != nil {
		if masuk, err := s.rdb.IsBlacklisted(ctx, claims.ID); err == nil && masuk {
			return nil, ErrRefreshInvalid
		}
	}

	// muat ulang pengguna agar perubahan role atau penghapusan akun ikut terbawa
	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalid
		}
		s.logger.Error("gagal mengambil pengguna", zap.Uint("id", claims.UserID), zap.Error(err))
		return nil, err
	}

	// rotasi: refresh token lama dihanguskan selama blacklist tersedia
	if s.rdb != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("gagal blacklist refresh token lama", zap.Error(err))
		}
	}

	return s.issueTokens(user)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		// Redis mati: logout tetap sukses, token hangus hanya lewat TTL
		s.logger.Warn("blacklist token dilewati, Redis tidak tersedia")
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("gagal blacklist token", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Me ──────────────────────

func (s *authService) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("gagal mengambil pengguna", zap.Uint("id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ────────────────────── RegisterOptions ──────────────────────

func (s *authService) RegisterOptions(ctx context.Context) (*dto.RegisterOptionsResponse, error) {
	rekap, err := s.repo.User.ListKelas(ctx)
	if err != nil {
		s.logger.Error("gagal mengambil daftar kelas", zap.Error(err))
		return nil, err
	}

	kelasSet := make(map[string]bool)
	jurusanSet := make(map[string]bool)
	opts := &dto.RegisterOptionsResponse{Kelas: []string{}, Jurusan: []string{}}
	for _, r := range rekap {
		if r.Kelas != "" && !kelasSet[r.Kelas] {
			kelasSet[r.Kelas] = true
			opts.Kelas = append(opts.Kelas, r.Kelas)
		}
		if r.Jurusan != "" && !jurusanSet[r.Jurusan] {
			jurusanSet[r.Jurusan] = true
			opts.Jurusan = append(opts.Jurusan, r.Jurusan)
		}
	}
	return opts, nil
}
