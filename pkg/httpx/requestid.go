package httpx

import (
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	// maxRequestIDLen — слишком длинный id клиента заменяем своим, чтобы не раздувать логи.
	maxRequestIDLen = 128
)

// RequestIDMiddleware принимает X-Request-ID от клиента или генерирует UUID,
// кладёт его в контекст запроса и возвращает в ответном заголовке.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
