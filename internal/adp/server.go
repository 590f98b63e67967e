package adp

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"draftboard/internal/jsonutil"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":5000"

const shutdownTimeout = 5 * time.Second

// Server serves a CSV file of ADP data as a JSON array on GET /adp.
// The file is re-read on every request.
type Server struct {
	csvPath string
	logger  zerolog.Logger
	tracer  trace.Tracer
	server  *http.Server
}

// NewServer creates a server for the CSV at csvPath, listening on addr.
func NewServer(addr, csvPath string, logger zerolog.Logger) *Server {
	s := &Server{
		csvPath: csvPath,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/adp", s.handleADP)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Str("csv", s.csvPath).Msg("adp server listening")

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// handleADP handles GET /adp.
func (s *Server) handleADP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodGet:
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
		return
	default:
		w.Header().Set("Allow", "GET, OPTIONS")
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	_, span := s.tracer.Start(r.Context(), "adp.serve",
		trace.WithAttributes(attribute.String("adp.csv", s.csvPath)))
	defer span.End()

	rows, err := s.load()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("csv", s.csvPath).Msg("csv file not found")
			s.writeError(w, http.StatusNotFound, "CSV file not found")
			return
		}
		s.logger.Error().Err(err).Str("csv", s.csvPath).Msg("load csv")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	span.SetAttributes(attribute.Int("adp.rows", len(rows)))
	if err := jsonutil.WriteJSON(w, http.StatusOK, rows); err != nil {
		s.logger.Error().Err(err).Msg("write adp response")
		return
	}
	s.logger.Debug().Int("rows", len(rows)).Str("remote", r.RemoteAddr).Msg("served adp")
}

func (s *Server) load() ([]Row, error) {
	f, err := os.Open(s.csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	if err := jsonutil.WriteError(w, status, msg); err != nil {
		s.logger.Error().Err(err).Msg("write error response")
	}
}
