package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-dashboard/internal/core/config"
	mdw "user-dashboard/internal/transport/http/middleware"
)

type recMod struct {
	name  string
	prio  int
	order *[]string
}

func (m recMod) MountAPI(g *gin.RouterGroup) {
	*m.order = append(*m.order, m.name)
	g.GET("/"+m.name, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"code": 0, "data": m.name}) })
	g.GET("/"+m.name+"/boom", func(*gin.Context) { panic("boom") })
}

func (m recMod) Priority() int { return m.prio }

type plainMod struct{ order *[]string }

func (m plainMod) MountAPI(*gin.RouterGroup) { *m.order = append(*m.order, "plain") }

func testLimits() config.Limits {
	return config.Limits{RPS: 1000, Burst: 1000, Concurrency: 10, MaxBodyBytes: 1 << 10, TimeoutSec: 5}
}

func TestRegistry_MountsByPriority(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var order []string
	reg := NewRegistry(plainMod{&order}, recMod{"b", 20, &order})
	reg.Register(recMod{"a", 10, &order})

	reg.MountAll(gin.New().Group("/api"))
	assert.Equal(t, []string{"a", "b", "plain"}, order)
}

func TestNewAPIEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var order []string
	r := NewAPIEngine(zap.NewNop(), testLimits(), NewRegistry(recMod{"x", 1, &order}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(mdw.KeyRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestNewAPIEngine_PanicReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var order []string
	r := NewAPIEngine(zap.NewNop(), testLimits(), NewRegistry(recMod{"x", 1, &order}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/x/boom", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 500, body.Code)
	assert.Equal(t, "internal error", body.Msg)
}

type holdMod struct{ started, release chan struct{} }

func (m holdMod) MountAPI(g *gin.RouterGroup) {
	g.GET("/hold", func(c *gin.Context) {
		close(m.started)
		<-m.release
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})
	g.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"code": 0}) })
}

func TestNewAPIEngine_QueuedRequestGetsBusy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := testLimits()
	lim.Concurrency, lim.TimeoutSec = 1, 1
	m := holdMod{started: make(chan struct{}), release: make(chan struct{})}
	r := NewAPIEngine(zap.NewNop(), lim, NewRegistry(m))

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/hold", nil))
	}()
	<-m.started

	begin := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 429, body.Code)
	assert.Less(t, time.Since(begin), 3*time.Second)

	close(m.release)
	<-done
}
