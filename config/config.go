package config

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/cshum/thumbor"
	"github.com/cshum/thumbor/server"
	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"
)

// CreateServer create server from flags, env vars and .env config file
func CreateServer(args []string, funcs ...Func) (srv *server.Server) {
	var (
		fs      = flag.NewFlagSet("thumbor", flag.ExitOnError)
		logger  *zap.Logger
		err     error
		options []server.Option
		alg     = sha1.New

		debug        = fs.Bool("debug", false, "Debug mode")
		version      = fs.Bool("version", false, "Thumbor URL server version")
		port         = fs.Int("port", 8000, "Server port")
		bind         = fs.String("bind", "", "Server address and port to bind .e.g. myhost:8888. This overrides server address and port config")
		goMaxProcess = fs.Int("gomaxprocs", 0, "GOMAXPROCS")

		_ = fs.String("config", ".env", "Retrieve configuration from the given file")

		thumborServerURL = fs.String("thumbor-server-url", "http://localhost:8888",
			"Thumbor server URL that generated URLs point to, without trailing slash")
		thumborSecret = fs.String("thumbor-secret", "",
			"Security key for signing thumbor URL. Generates unsafe URLs if empty")
		thumborSignerType = fs.String("thumbor-signer-type", "sha1",
			"Thumbor URL signature hasher type sha1, sha256 or sha512")
		thumborSignerTruncate = fs.Int("thumbor-signer-truncate", 0,
			"Thumbor URL signature truncate at length")

		serverAddress = fs.String("server-address", "",
			"Server address")
		serverPathPrefix = fs.String("server-path-prefix", "",
			"Server path prefix")
		serverCORS = fs.Bool("server-cors", false,
			"Enable CORS")
		serverAccessLog = fs.Bool("server-access-log", false,
			"Enable server access log")
		serverSSLCertFile = fs.String("server-ssl-cert-file", "",
			"Server SSL cert file")
		serverSSLKeyFile = fs.String("server-ssl-key-file", "",
			"Server SSL key file")

		sentryDsn = fs.String("sentry-dsn", "",
			"Include sentry dsn to integrate sentry")
	)

	options = ApplyFuncs(fs, func() (*zap.Logger, bool) {
		if err = ff.Parse(fs, args,
			ff.WithEnvVars(),
			ff.WithConfigFileFlag("config"),
			ff.WithIgnoreUndefined(true),
			ff.WithAllowMissingConfigFile(true),
			ff.WithConfigFileParser(ff.EnvParser),
		); err != nil {
			panic(err)
		}
		if logger, err = NewLogger(*debug, *sentryDsn); err != nil {
			panic(err)
		}
		return logger, *debug
	}, append(funcs, WithPrometheus)...)

	if *version {
		fmt.Println(thumbor.Version)
		return
	}

	if *goMaxProcess > 0 {
		logger.Debug("GOMAXPROCS", zap.Int("count", *goMaxProcess))
		runtime.GOMAXPROCS(*goMaxProcess)
	}

	switch strings.ToLower(*thumborSignerType) {
	case "sha256":
		alg = sha256.New
	case "sha512":
		alg = sha512.New
	}

	builder := thumbor.New(*thumborServerURL,
		thumbor.WithSecurityKey(*thumborSecret),
		thumbor.WithHashAlg(alg),
		thumbor.WithSignerTruncate(*thumborSignerTruncate),
		thumbor.WithLogger(logger),
	)

	return server.New(builder, append(options,
		server.WithAddr(*bind),
		server.WithAddress(*serverAddress),
		server.WithPort(*port),
		server.WithPathPrefix(*serverPathPrefix),
		server.WithCORS(*serverCORS),
		server.WithAccessLog(*serverAccessLog),
		server.WithSSL(*serverSSLCertFile, *serverSSLKeyFile),
		server.WithSentry(*sentryDsn),
		server.WithLogger(logger),
		server.WithDebug(*debug),
	)...)
}
