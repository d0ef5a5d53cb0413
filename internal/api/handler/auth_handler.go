package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// AuthHandler HTTP handler modul autentikasi
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler membuat AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register pendaftaran siswa baru
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Data pendaftaran tidak lengkap atau tidak valid")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameDipakai):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrNotAuthorized):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, "Pendaftaran berhasil", result)
}

// Login login pengguna
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Username dan password wajib diisi")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrKredensialSalah) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, "Login berhasil", result)
}

// Refresh penukaran refresh token dengan pasangan token baru
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Refresh token wajib diisi")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalid) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, "Token diperbarui", result)
}

// Logout invalidasi token aktif
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		response.Unauthorized(c, "Belum terautentikasi")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, "Belum terautentikasi")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, "Logout berhasil", nil)
}

// Me profil pengguna yang sedang login
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, "Profil pengguna", user)
}

// RegisterOptions pilihan kelas dan jurusan untuk form pendaftaran
// GET /api/v1/auth/register-options
func (h *AuthHandler) RegisterOptions(c *gin.Context) {
	opts, err := h.authSvc.RegisterOptions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, "Pilihan pendaftaran", opts)
}
