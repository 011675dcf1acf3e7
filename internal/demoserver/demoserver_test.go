package demoserver_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/emvolvovsky-bot/PetMatch/internal/demoserver"
)

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, demoserver.Config{APIKey: "k", File: "unused"})

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var m map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if m["status"] != "ok" {
		t.Fatalf("status field = %q, want %q", m["status"], "ok")
	}
}

func TestServeCatalog(t *testing.T) {
	csv := "name,age\nRex,3\n"
	file := filepath.Join(t.TempDir(), "pets.csv")
	if err := os.WriteFile(file, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, demoserver.Config{APIKey: "s3cret", File: file})

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/pets.csv", nil)
	req.Header.Set("X-API-Key", "s3cret")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /pets.csv: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/csv")
	}
	if cl := resp.Header.Get("Content-Length"); cl != strconv.Itoa(len(csv)) {
		t.Errorf("Content-Length = %q, want %d", cl, len(csv))
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != csv {
		t.Fatalf("body = %q, want %q", body, csv)
	}
}

func TestServeCatalog_RejectsBadKey(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pets.csv")
	if err := os.WriteFile(file, []byte("name,age\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, demoserver.Config{APIKey: "s3cret", File: file})

	tests := map[string]struct {
		key string
	}{
		"missing key": {key: ""},
		"wrong key":   {key: "nope"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/pets.csv", nil)
			if tc.key != "" {
				req.Header.Set("X-API-Key", tc.key)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("GET /pets.csv: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
			}

			var m map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if m["message"] != "invalid api key" {
				t.Fatalf("message = %v, want %q", m["message"], "invalid api key")
			}
		})
	}
}

func TestServeCatalog_FileMissing(t *testing.T) {
	srv := newTestServer(t, demoserver.Config{
		APIKey: "s3cret",
		File:   filepath.Join(t.TempDir(), "does-not-exist.csv"),
	})

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/pets.csv", nil)
	req.Header.Set("X-API-Key", "s3cret")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /pets.csv: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if m["message"] != "catalog file not found" {
		t.Fatalf("message = %v, want %q", m["message"], "catalog file not found")
	}
}

func TestHealthz_NoKeyRequired(t *testing.T) {
	srv := newTestServer(t, demoserver.Config{APIKey: "s3cret", File: "unused"})

	// The health route must stay reachable without credentials.
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func newTestServer(t *testing.T, cfg demoserver.Config) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(demoserver.New(cfg, log))
	t.Cleanup(srv.Close)

	return srv
}
