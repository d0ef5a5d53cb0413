package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/putraaxzy/Artemis-PKL/pkg/response"
)

// BodyLimit middleware batas ukuran body request global.
// maxBytes: batas maksimum dalam byte (misal 10<<20 = 10MB untuk lampiran).
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Fail(c, http.StatusRequestEntityTooLarge, "Ukuran request terlalu besar")
				return
			}
		}
	}
}
