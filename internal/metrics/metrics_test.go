package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/gopaginate/internal/metrics"
	"github.com/fuzumoe/gopaginate/internal/pagination"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestObservePage(t *testing.T) {
	m := metrics.New()
	m.ObservePage("users", pagination.Page{Number: 2, Size: 10})
	m.ObservePage("users", pagination.Page{Number: 3, Size: 10})

	out := scrape(t, m)
	assert.Contains(t, out, `gopaginate_pages_served_total{resource="users"} 2`)
	assert.Contains(t, out, `gopaginate_page_size_sum{resource="users"} 20`)
	assert.Contains(t, out, `gopaginate_page_number_count{resource="users"} 2`)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	out := scrape(t, m)
	assert.Contains(t, out, `gopaginate_http_requests_total{method="GET",path="/users",status="200"} 1`)
	assert.Contains(t, out, `gopaginate_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}
