package config

import (
	"flag"

	"github.com/cshum/thumbor/server"
	"go.uber.org/zap"
)

// Callback parses flags on first call and returns the logger
type Callback func() (logger *zap.Logger, isDebug bool)

// Func flag based config func.
// Defines flags on fs, calls cb to trigger parsing, then returns a server.Option
type Func func(fs *flag.FlagSet, cb Callback) server.Option

// ApplyFuncs applies funcs and returns server options in funcs order
func ApplyFuncs(fs *flag.FlagSet, cb Callback, funcs ...Func) (options []server.Option) {
	options, _, _ = applyFuncs(fs, cb, funcs...)
	return
}

func applyFuncs(fs *flag.FlagSet, cb Callback, funcs ...Func) (options []server.Option, logger *zap.Logger, isDebug bool) {
	if len(funcs) == 0 {
		logger, isDebug = cb()
		return
	}
	var last = len(funcs) - 1
	if funcs[last] == nil {
		return applyFuncs(fs, cb, funcs[:last]...)
	}
	var called bool
	option := funcs[last](fs, func() (*zap.Logger, bool) {
		options, logger, isDebug = applyFuncs(fs, cb, funcs[:last]...)
		called = true
		return logger, isDebug
	})
	if !called {
		options, logger, isDebug = applyFuncs(fs, cb, funcs[:last]...)
	}
	if option != nil {
		options = append(options, option)
	}
	return
}
