package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	ports "github.com/verigle/wandb/internal/core/ports/output"
)

func setupRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logging())
	r.GET("/ping", func(c *gin.Context) {
		*seen, _ = ports.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	r := setupRouter(&seen)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	r := setupRouter(&seen)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "caller-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-id", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "caller-id", seen)
}
