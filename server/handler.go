package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cshum/thumbor"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// Operation catalog operation name with positional args
type Operation struct {
	Name string        `json:"name"`
	Args []interface{} `json:"args,omitempty"`
}

// URLRequest request body of the /url endpoint
type URLRequest struct {
	Image      string      `json:"image"`
	Operations []Operation `json:"operations,omitempty"`
}

// URLResponse response body of the /url endpoint
type URLResponse struct {
	URL       string `json:"url"`
	Operation string `json:"operation,omitempty"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/url", method(http.MethodPost, s.handleURL))
	mux.Handle("/operations", method(http.MethodGet, s.handleOperations))
	mux.Handle("/health", method(http.MethodGet, handleHealth))
	mux.Handle("/favicon.ico", method(http.MethodGet, handleFavicon))
	mux.Handle("/", method(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		resError(w, thumbor.ErrNotFound)
	}))
	return mux
}

func method(m string, handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			resError(w, thumbor.ErrMethodNotAllowed)
			return
		}
		handler(w, r)
	})
}

func (s *Server) handleURL(w http.ResponseWriter, r *http.Request) {
	var req URLRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.Logger.Debug("decode", zap.Error(err))
		resError(w, thumbor.ErrInvalid)
		return
	}
	b := s.Builder.SetPath(req.Image)
	catalog := b.Catalog()
	for _, op := range req.Operations {
		if _, ok := catalog.Lookup(op.Name); !ok {
			resError(w, thumbor.NewError(
				fmt.Sprintf("%s: %s", thumbor.ErrUnknownOperation.Message, op.Name),
				thumbor.ErrUnknownOperation.Code))
			return
		}
		b = b.Apply(op.Name, op.Args...)
	}
	u, err := b.BuildURL()
	if err != nil {
		resError(w, thumbor.WrapError(err))
		return
	}
	resJSON(w, URLResponse{URL: u, Operation: b.Operation()})
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	resJSON(w, s.Builder.Catalog().Names())
}

func handleFavicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	resJSON(w, GetHealthStats())
}

func resJSON(w http.ResponseWriter, v interface{}) {
	buf, _ := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	_, _ = w.Write(buf)
}

func resError(w http.ResponseWriter, err thumbor.Error) {
	buf, _ := json.Marshal(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.WriteHeader(err.Code)
	_, _ = w.Write(buf)
}

func (s *Server) panicHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = errors.New(fmt.Sprint(rec))
				}
				s.Logger.Error("panic", zap.Error(err), zap.String("uri", r.URL.String()))
				resError(w, thumbor.WrapError(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) accessLogHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Logger.Info("access",
			zap.Int("status", rec.status),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.String()),
			zap.String("ip", r.RemoteAddr),
			zap.Duration("took", time.Since(start)),
		)
	})
}
