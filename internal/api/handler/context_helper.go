package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/internal/service"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// MustGetActor membaca identitas pemanggil yang diinjeksi middleware JWT.
// Bila middleware tidak terpasang dengan benar, tulis 401 dan kembalikan
// ok=false; pemanggil langsung return.
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	userID, adaID := c.Get("user_id")
	role, adaRole := c.Get("role")
	if !adaID || !adaRole {
		response.Unauthorized(c, "Belum terautentikasi")
		return service.Actor{}, false
	}

	id, okID := userID.(uint)
	r, okRole := role.(string)
	if !okID || !okRole || id == 0 || r == "" {
		response.Unauthorized(c, "Belum terautentikasi")
		return service.Actor{}, false
	}

	return service.Actor{ID: id, Role: r}, true
}

// parseIDParam membaca parameter path numerik. Bila bukan angka positif,
// tulis 400 dan kembalikan ok=false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Parameter "+name+" tidak valid")
		return 0, false
	}
	return uint(id), true
}
