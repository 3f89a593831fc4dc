package config

import (
	"flag"
	"testing"

	"github.com/cshum/thumbor/metrics/prometheusmetrics"
	"github.com/cshum/thumbor/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault(t *testing.T) {
	srv := CreateServer(nil)
	assert.Equal(t, ":8000", srv.Addr)
	assert.False(t, srv.Debug)
	assert.False(t, srv.AccessLog)
	assert.Nil(t, srv.Metrics)
	assert.Empty(t, srv.PathPrefix)
	assert.Empty(t, srv.SentryDsn)

	cfg := srv.Builder.Configuration()
	assert.Equal(t, "http://localhost:8888", cfg.ServerURL())
	assert.Empty(t, cfg.SecurityKey())
	assert.Nil(t, srv.Builder.Signer())
	assert.Equal(t, "http://localhost:8888/unsafe/a.png", srv.Builder.SetPath("a.png").String())
}

func TestBasic(t *testing.T) {
	srv := CreateServer([]string{
		"-debug",
		"-port", "2345",
		"-server-address", "127.0.0.1",
		"-server-path-prefix", "/thumbor",
		"-server-access-log",
		"-server-cors",
		"-thumbor-server-url", "https://thumbor.example.com",
		"-thumbor-secret", "foo",
	})
	assert.Equal(t, "127.0.0.1:2345", srv.Addr)
	assert.True(t, srv.Debug)
	assert.True(t, srv.AccessLog)
	assert.Equal(t, "/thumbor", srv.PathPrefix)

	cfg := srv.Builder.Configuration()
	assert.Equal(t, "https://thumbor.example.com", cfg.ServerURL())
	assert.Equal(t, "foo", cfg.SecurityKey())
	require.NotNil(t, srv.Builder.Signer())
	assert.Equal(t, "RrTsWGEXFU2s1J1mTl1j_ciO-1E=", srv.Builder.Signer().Sign("ba", "r"))
}

func TestVersion(t *testing.T) {
	assert.Empty(t, CreateServer([]string{"-version"}))
}

func TestBind(t *testing.T) {
	srv := CreateServer([]string{
		"-debug",
		"-port", "2345",
		"-bind", ":4567",
	})
	assert.Equal(t, ":4567", srv.Addr)
}

func TestEnv(t *testing.T) {
	t.Setenv("THUMBOR_SECRET", "foo")
	t.Setenv("THUMBOR_SERVER_URL", "http://env.example.com")
	t.Setenv("PORT", "3456")
	srv := CreateServer(nil)
	assert.Equal(t, ":3456", srv.Addr)
	assert.Equal(t, "http://env.example.com", srv.Builder.Configuration().ServerURL())
	assert.Equal(t, "RrTsWGEXFU2s1J1mTl1j_ciO-1E=", srv.Builder.Signer().Sign("", "bar"))
}

func TestSentry(t *testing.T) {
	srv := CreateServer([]string{
		"-sentry-dsn", "https://12345@sentry.com/123",
	})
	assert.Equal(t, "https://12345@sentry.com/123", srv.SentryDsn)
}

func TestSignerAlgorithm(t *testing.T) {
	srv := CreateServer([]string{
		"-thumbor-secret", "foo",
		"-thumbor-signer-type", "sha256",
	})
	assert.Len(t, srv.Builder.Signer().Sign("", "bar"), 44)

	srv = CreateServer([]string{
		"-thumbor-secret", "foo",
		"-thumbor-signer-type", "SHA512",
		"-thumbor-signer-truncate", "32",
	})
	assert.Len(t, srv.Builder.Signer().Sign("", "bar"), 32)
}

func TestPrometheus(t *testing.T) {
	srv := CreateServer([]string{
		"-bind", ":2345",
		"-prometheus-bind", ":6789",
		"-prometheus-path", "/myprom",
	})
	assert.Equal(t, ":2345", srv.Addr)
	pm := srv.Metrics.(*prometheusmetrics.Server)
	assert.Equal(t, ":6789", pm.Addr)
	assert.Equal(t, "/myprom", pm.Path)
}

func TestApplyFuncs(t *testing.T) {
	fs := flag.NewFlagSet("thumbor", flag.ExitOnError)
	nopLogger := zap.NewNop()
	var seq []int
	options := ApplyFuncs(fs, func() (logger *zap.Logger, isDebug bool) {
		seq = append(seq, 4)
		return nopLogger, true
	}, func(fs *flag.FlagSet, cb Callback) server.Option {
		seq = append(seq, 3)
		logger, isDebug := cb()
		assert.Equal(t, nopLogger, logger)
		assert.True(t, isDebug)
		seq = append(seq, 5)
		return func(s *server.Server) {
			seq = append(seq, 8)
		}
	}, nil, func(fs *flag.FlagSet, cb Callback) server.Option {
		seq = append(seq, 2)
		logger, isDebug := cb()
		assert.Equal(t, nopLogger, logger)
		assert.True(t, isDebug)
		seq = append(seq, 6)
		return func(s *server.Server) {
			seq = append(seq, 9)
		}
	}, func(fs *flag.FlagSet, cb Callback) server.Option {
		seq = append(seq, 1)
		logger, isDebug := cb()
		assert.Equal(t, nopLogger, logger)
		assert.True(t, isDebug)
		seq = append(seq, 7)
		return func(s *server.Server) {
			seq = append(seq, 10)
		}
	}, func(fs *flag.FlagSet, cb Callback) server.Option {
		seq = append(seq, 0)
		return nil
	})
	assert.Len(t, options, 3)
	for _, option := range options {
		option(&server.Server{})
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seq)
}
