package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/ports/mocks"
	"github.com/Gunvolt24/cinema_tickets/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

func serve(r *gin.Engine, method, path string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/bad", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	gomock.InOrder(
		log.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
		log.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
		log.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
	)

	serve(r, http.MethodGet, "/ok")
	serve(r, http.MethodPost, "/bad")
	serve(r, http.MethodGet, "/boom")
	// /ping не логируется: лишний вызов уронит тест как unexpected call
	serve(r, http.MethodGet, "/ping")
}
