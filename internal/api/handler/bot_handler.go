package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// BotHandler HTTP handler integrasi WA bot pengingat
type BotHandler struct {
	reminderSvc service.ReminderService
}

// NewBotHandler membuat BotHandler
func NewBotHandler(reminderSvc service.ReminderService) *BotHandler {
	return &BotHandler{reminderSvc: reminderSvc}
}

// SendReminders mengantre pengingat untuk seluruh penugasan pending
// POST /api/v1/tugas/:id/reminder
func (h *BotHandler) SendReminders(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	jumlah, err := h.reminderSvc.SendReminders(c.Request.Context(), id, actor)
	if err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.OK(c, "Pengingat masuk antrean", gin.H{"jumlah": jumlah})
}

// Record mencatat pengingat yang sudah dikirim bot
// POST /api/v1/bot/reminder
func (h *BotHandler) Record(c *gin.Context) {
	var req dto.RecordReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Data pengingat tidak lengkap")
		return
	}

	if err := h.reminderSvc.Record(c.Request.Context(), &req); err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, "Pengingat tercatat", nil)
}

// History riwayat pengingat satu tugas
// GET /api/v1/bot/reminder/:id_tugas
func (h *BotHandler) History(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id_tugas")
	if !ok {
		return
	}

	logs, err := h.reminderSvc.History(c.Request.Context(), id, actor)
	if err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.OK(c, "Riwayat pengingat", logs)
}

func (h *BotHandler) handleReminderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrTugasNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrTidakAdaPending):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrReminderNonaktif):
		response.Fail(c, http.StatusServiceUnavailable, err.Error())
	default:
		response.InternalError(c)
	}
}
