package config

import (
	"flag"
	"net"
	"strconv"

	"github.com/cshum/thumbor/metrics/prometheusmetrics"
	"github.com/cshum/thumbor/server"
)

// WithPrometheus enables the Prometheus metrics server with -prometheus-bind
func WithPrometheus(fs *flag.FlagSet, cb Callback) server.Option {
	var (
		prometheusBind = fs.String("prometheus-bind", "",
			"Specify address and port to enable Prometheus metrics, e.g. :5000, prom:7000")
		prometheusPath = fs.String("prometheus-path", "/metrics",
			"Prometheus metrics path")
	)
	logger, _ := cb()
	if *prometheusBind == "" {
		return nil
	}
	host, portStr, err := net.SplitHostPort(*prometheusBind)
	if err != nil {
		panic(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		panic(err)
	}
	return server.WithMetrics(prometheusmetrics.New(
		prometheusmetrics.WithHost(host),
		prometheusmetrics.WithPort(port),
		prometheusmetrics.WithPath(*prometheusPath),
		prometheusmetrics.WithLogger(logger),
	))
}
