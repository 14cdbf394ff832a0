package middleware

import (
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request identifier is stored under
const RequestIDKey = "request_id"

// RequestIDHeader is the HTTP header the request identifier travels in
const RequestIDHeader = "X-Request-ID"

// RequestID middleware assigns every request an identifier. An identifier
// supplied by the client is kept, otherwise a fresh one is generated. The
// identifier is stored on the gin context, pushed into the request context for
// downstream layers, and echoed back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
