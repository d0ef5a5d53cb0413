package dto

import "github.com/putraaxzy/Artemis-PKL/internal/model"

// ── DTO modul autentikasi ──

// RegisterRequest pendaftaran siswa baru
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Telepon  string `json:"telepon"  binding:"required,min=8,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"required,oneof=siswa"` // pendaftaran mandiri hanya untuk siswa
	Kelas    string `json:"kelas"    binding:"required"`
	Jurusan  string `json:"jurusan"  binding:"required"`
}

// LoginRequest login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest penukaran refresh token dengan pasangan token baru
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse respons login/register/refresh
type AuthResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	Pengguna     *model.User `json:"pengguna"`
}

// RegisterOptionsResponse pilihan kelas dan jurusan saat pendaftaran
type RegisterOptionsResponse struct {
	Kelas   []string `json:"kelas"`
	Jurusan []string `json:"jurusan"`
}
