package source

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"http://example.com/t.json":  true,
		"https://example.com/t.json": true,
		"HTTPS://example.com/t.json": true,
		"./transcript.json":          false,
		"/data/transcript.json":      false,
		"ftp://example.com/t.json":   false,
	}
	for loc, want := range cases {
		if got := IsURL(loc); got != want {
			t.Errorf("IsURL(%q): expected %v, got %v", loc, want, got)
		}
	}
}

func TestRead_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	if err := os.WriteFile(path, []byte(`{"call":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"call":{}}` {
		t.Errorf("unexpected payload %q", data)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRead_HTTPSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Transcript":[]}`))
	}))
	defer srv.Close()

	data, err := Read(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"Transcript":[]}` {
		t.Errorf("unexpected payload %q", data)
	}
}

func TestRead_HTTPRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	data, err := Read(srv.URL)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("unexpected payload %q", data)
	}
	if n := atomic.LoadInt32(&calls); n < 2 {
		t.Errorf("expected at least 2 attempts, got %d", n)
	}
}

func TestRead_HTTPClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Read(srv.URL); err == nil {
		t.Error("expected error for 404")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("client errors must not be retried, got %d attempts", n)
	}
}
