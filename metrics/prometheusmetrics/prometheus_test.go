package prometheusmetrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithOption(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		v := New()
		assert.Equal(t, "", v.Host)
		assert.Equal(t, 9000, v.Port)
		assert.Equal(t, "/metrics", v.Path)
		assert.Equal(t, ":9000", v.Addr)
		assert.NotNil(t, v.Logger)
	})

	t.Run("options", func(t *testing.T) {
		l := &zap.Logger{}
		v := New(
			WithHost("domain.example.com"),
			WithPort(1111),
			WithPath("/path"),
			WithLogger(l),
		)
		assert.Equal(t, "domain.example.com", v.Host)
		assert.Equal(t, 1111, v.Port)
		assert.Equal(t, "/path", v.Path)
		assert.Equal(t, "domain.example.com:1111", v.Addr)
		assert.Equal(t, &l, &v.Logger)
	})
}

func TestHandle(t *testing.T) {
	s := New()
	before := testutil.CollectAndCount(requestCounter)
	h := s.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/url", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.CollectAndCount(requestCounter))
}

func TestStartupShutdown(t *testing.T) {
	s := New(WithHost("127.0.0.1"), WithPort(0))
	require.NoError(t, s.Startup(context.Background()))
	assert.NoError(t, s.Shutdown(context.Background()))

	s = New(WithHost("127.0.0.1"), WithPort(-1))
	assert.Error(t, s.Startup(context.Background()))
}
