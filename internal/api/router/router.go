package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/config"
	"github.com/putraaxzy/Artemis-PKL/internal/api/handler"
	"github.com/putraaxzy/Artemis-PKL/internal/api/middleware"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
)

// Setup membangun engine Gin beserta seluruh rute
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(10 << 20)) // lampiran tugas maksimal 10MB

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// autentikasi (tanpa login)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.GET("/register-options", h.Auth.RegisterOptions)
		}

		// rute berautentikasi
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// modul tugas
			tugas := authorized.Group("/tugas")
			{
				tugas.POST("", middleware.RoleAuth(model.RoleGuru), h.Tugas.Create)
				tugas.GET("", middleware.RoleAuth(model.RoleGuru), h.Tugas.List)
				tugas.GET("/siswa", middleware.RoleAuth(model.RoleSiswa), h.Tugas.ListSiswa)
				tugas.GET("/:id/detail", middleware.RoleAuth(model.RoleGuru), h.Tugas.Detail)
				tugas.PUT("/:id", middleware.RoleAuth(model.RoleGuru), h.Tugas.Update)
				tugas.DELETE("/:id", middleware.RoleAuth(model.RoleGuru), h.Tugas.Delete)
				tugas.GET("/:id/pending", middleware.RoleAuth(model.RoleGuru), h.Tugas.ListPending)
				tugas.POST("/:id/submit", middleware.RoleAuth(model.RoleSiswa), h.Tugas.Submit)
				tugas.PUT("/penugasan/:id/status", middleware.RoleAuth(model.RoleGuru), h.Tugas.Grade)
				tugas.GET("/:id/export", middleware.RoleAuth(model.RoleGuru), h.Export.ExportTugas)
				tugas.POST("/:id/reminder", middleware.RoleAuth(model.RoleGuru), h.Bot.SendReminders)
			}

			// modul siswa (hanya guru)
			siswa := authorized.Group("/siswa")
			siswa.Use(middleware.RoleAuth(model.RoleGuru))
			{
				siswa.GET("", h.Siswa.List)
				siswa.GET("/kelas", h.Siswa.ListKelas)
				siswa.POST("/by-kelas", h.Siswa.ByKelas)
			}

			// integrasi WA bot; bot memakai token guru, siswa tidak boleh
			// menulis log pengingat
			bot := authorized.Group("/bot")
			bot.Use(middleware.RoleAuth(model.RoleGuru))
			{
				bot.POST("/reminder", h.Bot.Record)
				bot.GET("/reminder/:id_tugas", h.Bot.History)
			}

			// asisten AI
			authorized.POST("/chat", h.Chat.Chat)
		}
	}

	return r
}
