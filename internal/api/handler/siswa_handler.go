package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// SiswaHandler HTTP handler data siswa untuk guru
type SiswaHandler struct {
	siswaSvc service.SiswaService
}

// NewSiswaHandler membuat SiswaHandler
func NewSiswaHandler(siswaSvc service.SiswaService) *SiswaHandler {
	return &SiswaHandler{siswaSvc: siswaSvc}
}

// List seluruh siswa terdaftar
// GET /api/v1/siswa
func (h *SiswaHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	items, err := h.siswaSvc.List(c.Request.Context(), actor)
	if err != nil {
		h.handleSiswaError(c, err)
		return
	}

	response.OK(c, "Daftar siswa", items)
}

// ListKelas rekap kelas+jurusan beserta jumlah siswanya
// GET /api/v1/siswa/kelas
func (h *SiswaHandler) ListKelas(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	items, err := h.siswaSvc.ListKelas(c.Request.Context(), actor)
	if err != nil {
		h.handleSiswaError(c, err)
		return
	}

	response.OK(c, "Daftar kelas", items)
}

// ByKelas siswa pada satu kelas+jurusan
// POST /api/v1/siswa/by-kelas
func (h *SiswaHandler) ByKelas(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.SiswaByKelasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Kelas dan jurusan wajib diisi")
		return
	}

	result, err := h.siswaSvc.ByKelas(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleSiswaError(c, err)
		return
	}

	response.OK(c, "Siswa per kelas", result)
}

func (h *SiswaHandler) handleSiswaError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotAuthorized) {
		response.Forbidden(c, err.Error())
		return
	}
	response.InternalError(c)
}
