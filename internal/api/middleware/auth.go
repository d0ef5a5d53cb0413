package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/pkg/jwt"
	"github.com/putraaxzy/Artemis-PKL/pkg/redis"
	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// JWTAuth middleware autentikasi JWT.
// Mengambil dan memverifikasi access token dari Authorization: Bearer <token>,
// lalu memeriksa blacklist (token yang sudah logout).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Header autentikasi tidak ada")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Format header autentikasi tidak valid")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token tidak valid atau sudah kedaluwarsa")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, "Jenis token tidak valid")
			c.Abort()
			return
		}

		// token yang sudah logout ditolak; Redis mati berarti pemeriksaan
		// dilewati dan token hangus hanya lewat kedaluwarsa
		if rdb != nil {
			if masuk, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && masuk {
				response.Unauthorized(c, "Token sudah tidak berlaku")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth middleware otorisasi peran.
// Meloloskan request hanya bila peran pengguna ada di daftar.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "Belum terautentikasi")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Kamu tidak berhak mengakses sumber daya ini")
		c.Abort()
	}
}
