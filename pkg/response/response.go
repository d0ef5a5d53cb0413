package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response amplop JSON seragam seluruh API
type Response struct {
	Berhasil bool        `json:"berhasil"`
	Pesan    string      `json:"pesan"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"` // detail teknis, hanya mode debug
}

// ── respons sukses ──

// OK 200
func OK(c *gin.Context, pesan string, data interface{}) {
	c.JSON(http.StatusOK, Response{Berhasil: true, Pesan: pesan, Data: data})
}

// Created 201
func Created(c *gin.Context, pesan string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Berhasil: true, Pesan: pesan, Data: data})
}

// ── respons gagal ──

// Fail respons gagal generik
func Fail(c *gin.Context, httpStatus int, pesan string) {
	c.JSON(httpStatus, Response{Berhasil: false, Pesan: pesan})
}

// FailWithError respons gagal dengan detail teknis (mode debug)
func FailWithError(c *gin.Context, httpStatus int, pesan, detail string) {
	c.JSON(httpStatus, Response{Berhasil: false, Pesan: pesan, Error: detail})
}

// BadRequest 400
func BadRequest(c *gin.Context, pesan string) {
	Fail(c, http.StatusBadRequest, pesan)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, pesan string) {
	Fail(c, http.StatusUnauthorized, pesan)
}

// Forbidden 403
func Forbidden(c *gin.Context, pesan string) {
	Fail(c, http.StatusForbidden, pesan)
}

// NotFound 404
func NotFound(c *gin.Context, pesan string) {
	Fail(c, http.StatusNotFound, pesan)
}

// Conflict 409: prasyarat status tidak terpenuhi, klien perlu refresh
func Conflict(c *gin.Context, pesan string) {
	Fail(c, http.StatusConflict, pesan)
}

// UnprocessableEntity 422
func UnprocessableEntity(c *gin.Context, pesan string) {
	Fail(c, http.StatusUnprocessableEntity, pesan)
}

// BadGateway 502: layanan eksternal gagal
func BadGateway(c *gin.Context, pesan string) {
	Fail(c, http.StatusBadGateway, pesan)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "Terjadi kesalahan pada server")
}
