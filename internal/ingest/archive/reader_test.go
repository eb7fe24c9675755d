package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galnet-relay/relay/internal/galnet"
)

func TestReader_URL(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	r := NewReader("https://eddn.example.org/archive")
	ds := galnet.Dataset{Name: "FSDJump", FileBase: "FSDJump"}

	assert.Equal(t, "https://eddn.example.org/archive/2026-01/FSDJump-2026-01-15.jsonl.bz2", r.URL(ds, "2026-01-15"))
}

func TestReader_URL_ShortDayFallsBackWhole(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	r := NewReader("https://eddn.example.org/archive")
	ds := galnet.Dataset{Name: "FSDJump", FileBase: "FSDJump"}

	assert.Equal(t, "https://eddn.example.org/archive/bad/FSDJump-bad.jsonl.bz2", r.URL(ds, "bad"))
}

func TestReader_Lines_NonOKStatusFails(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewReader(srv.URL)
	ds := galnet.Dataset{Name: "FSDJump", FileBase: "FSDJump"}

	err := r.Lines(context.Background(), ds, "2026-01-15", func(line []byte) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestReader_Lines_TransportFailureFails(t *testing.T) {
	if !testing.Short() {
		t.Skip("skipping unit test in non-short mode")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	srv.Close() // closed before use: guarantees a connection failure

	r := NewReader(srv.URL)
	ds := galnet.Dataset{Name: "FSDJump", FileBase: "FSDJump"}

	err := r.Lines(context.Background(), ds, "2026-01-15", func(line []byte) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}
