package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("server")

const (
	// maxSceneBytes bounds the size of a posted scene file
	maxSceneBytes = 1 << 20
	// maxSamples bounds the supersampled grid of a single request
	maxSamples = 4096 * 4096
)

// Server renders posted scene files over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Handler returns the HTTP handler with every API endpoint registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Noticef("starting web server on http://localhost%s", srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Notice("shutting down web server")
		return srv.Shutdown(shutdownCtx)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readScene parses and builds the scene file posted in the request body
func readScene(w http.ResponseWriter, r *http.Request) (*scene.Scene, error) {
	if r.Method != http.MethodPost {
		return nil, errors.Errorf("method %s not allowed, POST a scene file", r.Method)
	}

	body := http.MaxBytesReader(w, r.Body, maxSceneBytes)
	file, err := loaders.ParseSceneFile(body)
	if err != nil {
		return nil, err
	}
	return scene.Build(file)
}

// parseIntParam parses an optional integer parameter within [min, max]
func parseIntParam(values url.Values, key string, min, max int) (int, bool, error) {
	value := values.Get(key)
	if value == "" {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, errors.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return 0, false, errors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
	}
	return parsed, true, nil
}

// parseFloatParam parses an optional float parameter within [min, max]
func parseFloatParam(values url.Values, key string, min, max float64) (float64, bool, error) {
	value := values.Get(key)
	if value == "" {
		return 0, false, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, errors.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return 0, false, errors.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
	}
	return parsed, true, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
