package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	m := httpx.NewMetrics("devconnector")

	mux := http.NewServeMux()
	mux.Handle("GET /things/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMsg(w, http.StatusNotFound, "Thing not found")
	}))

	h := httpx.Chain(mux, m.Middleware())

	for _, path := range []string{"/things/1", "/things/2", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	out := string(body)
	require.Contains(t, out, `devconnector_http_requests_total{code="404",method="GET",route="GET /things/{id}"} 2`)
	require.Contains(t, out, `devconnector_http_requests_total{code="404",method="GET",route="unmatched"} 1`)
	require.Contains(t, out, `devconnector_http_requests_in_flight 0`)
	require.Contains(t, out, `go_goroutines`)
}

func TestMetricsRegistryIsPerInstance(t *testing.T) {
	a := httpx.NewMetrics("devconnector")
	b := httpx.NewMetrics("devconnector")

	h := httpx.Chain(http.NotFoundHandler(), a.Middleware())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	requestsTotal := func(m *httpx.Metrics) float64 {
		families, err := m.Registry().Gather()
		require.NoError(t, err)

		var total float64
		for _, mf := range families {
			if mf.GetName() != "devconnector_http_requests_total" {
				continue
			}
			for _, metric := range mf.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
		}
		return total
	}

	require.Equal(t, float64(1), requestsTotal(a))
	require.Equal(t, float64(0), requestsTotal(b))
}
