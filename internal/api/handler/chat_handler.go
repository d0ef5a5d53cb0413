package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// ChatHandler HTTP handler asisten AI
type ChatHandler struct {
	cfg     *config.Config
	chatSvc service.ChatService
}

// NewChatHandler membuat ChatHandler
func NewChatHandler(cfg *config.Config, chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{cfg: cfg, chatSvc: chatSvc}
}

// Chat meneruskan pertanyaan siswa ke model generatif,
// opsional dengan konteks satu tugas
// POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Pesan wajib diisi, maksimal 2000 karakter")
		return
	}

	result, err := h.chatSvc.Chat(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			if h.cfg.App.Debug {
				// detail teknis upstream hanya tampil saat debug
				response.FailWithError(c, http.StatusBadGateway, service.ErrUpstream.Error(), err.Error())
				return
			}
			response.BadGateway(c, service.ErrUpstream.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, "Jawaban asisten", result)
}
