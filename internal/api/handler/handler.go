package handler

import (
	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/service"
)

// Handler agregat seluruh HTTP handler
type Handler struct {
	Auth   *AuthHandler
	Tugas  *TugasHandler
	Chat   *ChatHandler
	Export *ExportHandler
	Siswa  *SiswaHandler
	Bot    *BotHandler
}

// NewHandler membuat agregat Handler
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Tugas:  NewTugasHandler(svc.Tugas, svc.Penugasan),
		Chat:   NewChatHandler(cfg, svc.Chat),
		Export: NewExportHandler(svc.Export),
		Siswa:  NewSiswaHandler(svc.Siswa),
		Bot:    NewBotHandler(svc.Reminder),
	}
}
