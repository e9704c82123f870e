package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// Уровень зависит от статуса: 5xx — error, 4xx — warn, остальное — info.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем служебные ручки
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		logf := levelFor(log, c.Writer.Status())
		logf(ctx,
			"request trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			tr, sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}

func levelFor(log ports.Logger, status int) func(context.Context, string, ...any) {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Errorf
	case status >= http.StatusBadRequest:
		return log.Warnf
	default:
		return log.Infof
	}
}
