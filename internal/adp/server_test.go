package adp

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "half_ppr_adp.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestServer_ServesRowsWithRank(t *testing.T) {
	path := writeCSV(t, "Name,ADP\nA,5\nB,\nC,2\n")
	srv := NewServer(DefaultAddr, path, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/adp", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rows []Row
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "ADP", "rank"}, rows[2].Keys())
	rank, _ := rows[2].Get("rank")
	assert.Equal(t, "3", rank.String())
	adp, _ := rows[1].Get("ADP")
	assert.True(t, adp.IsNull())
}

func TestServer_MissingFile(t *testing.T) {
	srv := NewServer(DefaultAddr, filepath.Join(t.TempDir(), "nope.csv"), zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adp", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"CSV file not found"}`, rec.Body.String())
}

func TestServer_BadCSV(t *testing.T) {
	path := writeCSV(t, "Name,ADP\nA,1,2\n")
	srv := NewServer(DefaultAddr, path, zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adp", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestServer_Methods(t *testing.T) {
	srv := NewServer(DefaultAddr, writeCSV(t, "Name\nA\n"), zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/adp", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/adp", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ClientRoundTrip(t *testing.T) {
	path := writeCSV(t, "Name,ADP\nA,5\nB,\nC,2\n")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	srv := NewServer(ln.Addr().String(), path, zerolog.Nop())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	ds, err := NewClient("http://" + ln.Addr().String() + "/adp").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"Name", "ADP", "rank"}, ds.Columns())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
