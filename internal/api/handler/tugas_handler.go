package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// TugasHandler HTTP handler modul tugas dan penugasan
type TugasHandler struct {
	tugasSvc     service.TugasService
	penugasanSvc service.PenugasanService
}

// NewTugasHandler membuat TugasHandler
func NewTugasHandler(tugasSvc service.TugasService, penugasanSvc service.PenugasanService) *TugasHandler {
	return &TugasHandler{tugasSvc: tugasSvc, penugasanSvc: penugasanSvc}
}

// Create membuat tugas baru, lampiran opsional lewat multipart field "file_detail"
// POST /api/v1/tugas
func (h *TugasHandler) Create(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateTugasRequest
	if err := c.ShouldBind(&req); err != nil {
		response.UnprocessableEntity(c, "Data tugas tidak lengkap atau tidak valid")
		return
	}

	var file io.Reader
	filename := ""
	if fh, err := c.FormFile("file_detail"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(c, "Lampiran tidak dapat dibaca")
			return
		}
		defer f.Close()
		file = f
		filename = fh.Filename
	}

	tugas, err := h.tugasSvc.Create(c.Request.Context(), actor, &req, file, filename)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.Created(c, "Tugas berhasil dibuat", tugas)
}

// List daftar tugas milik guru beserta statistik
// GET /api/v1/tugas
func (h *TugasHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	items, err := h.tugasSvc.ListForGuru(c.Request.Context(), actor)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Daftar tugas", items)
}

// ListSiswa daftar tugas dari sudut pandang siswa yang login
// GET /api/v1/tugas/siswa
func (h *TugasHandler) ListSiswa(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	items, err := h.tugasSvc.ListForSiswa(c.Request.Context(), actor)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Daftar tugas siswa", items)
}

// Detail penugasan lengkap satu tugas beserta statistik
// GET /api/v1/tugas/:id/detail
func (h *TugasHandler) Detail(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tugas, stat, err := h.tugasSvc.Detail(c.Request.Context(), id, actor)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Detail tugas", gin.H{"tugas": tugas, "statistik": stat})
}

// Update memperbarui tugas; tipe pengumpulan tidak bisa diubah
// PUT /api/v1/tugas/:id
func (h *TugasHandler) Update(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTugasRequest
	if err := c.ShouldBind(&req); err != nil {
		response.UnprocessableEntity(c, "Data pembaruan tidak valid")
		return
	}

	tugas, err := h.tugasSvc.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Tugas berhasil diperbarui", tugas)
}

// Delete menghapus tugas beserta seluruh penugasannya
// DELETE /api/v1/tugas/:id
func (h *TugasHandler) Delete(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tugasSvc.Delete(c.Request.Context(), id, actor); err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Tugas berhasil dihapus", nil)
}

// ListPending penugasan yang belum dikumpulkan
// GET /api/v1/tugas/:id/pending
func (h *TugasHandler) ListPending(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, err := h.tugasSvc.ListPending(c.Request.Context(), id, actor)
	if err != nil {
		h.handleTugasError(c, err)
		return
	}

	response.OK(c, "Penugasan pending", rows)
}

// Submit pengumpulan tugas oleh siswa
// POST /api/v1/tugas/:id/submit
func (h *TugasHandler) Submit(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Data pengumpulan tidak valid")
		return
	}

	penugasan, err := h.penugasanSvc.Submit(c.Request.Context(), id, actor, req.LinkDrive)
	if err != nil {
		h.handlePenugasanError(c, err)
		return
	}

	response.OK(c, "Tugas berhasil dikumpulkan", penugasan)
}

// Grade penilaian pengumpulan oleh guru pemilik tugas
// PUT /api/v1/tugas/penugasan/:id/status
func (h *TugasHandler) Grade(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Status penilaian harus selesai atau ditolak")
		return
	}

	penugasan, err := h.penugasanSvc.Grade(c.Request.Context(), id, actor, &req)
	if err != nil {
		h.handlePenugasanError(c, err)
		return
	}

	response.OK(c, "Penilaian tersimpan", penugasan)
}

// ── pemetaan error ke status HTTP ──

func (h *TugasHandler) handleTugasError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrTugasNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTargetKosong),
		errors.Is(err, service.ErrTargetInvalid),
		errors.Is(err, service.ErrTanggalInvalid):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, service.ErrStorageNonaktif):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUpstream):
		response.BadGateway(c, service.ErrUpstream.Error())
	default:
		response.InternalError(c)
	}
}

func (h *TugasHandler) handlePenugasanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrTransisiStatus):
		// prasyarat status tidak terpenuhi, klien perlu memuat ulang data
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrLinkWajib),
		errors.Is(err, service.ErrNilaiWajib),
		errors.Is(err, service.ErrNilaiRentang):
		response.UnprocessableEntity(c, err.Error())
	default:
		response.InternalError(c)
	}
}
