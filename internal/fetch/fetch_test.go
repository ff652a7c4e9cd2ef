package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newDownloader(t *testing.T, maxBytes int64) *Downloader {
	t.Helper()
	return NewDownloader(http.DefaultClient, maxBytes, zerolog.Nop())
}

func TestFetchSuccess(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	body, err := newDownloader(t, 1<<20).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !bytes.Equal(body, payload) {
		t.Errorf("body mismatch: got %d bytes, want %d", len(body), len(payload))
	}
}

func TestFetchNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))

		_, err := newDownloader(t, 1<<20).Fetch(context.Background(), srv.URL)
		srv.Close()

		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("status %d: error = %v, want *StatusError", status, err)
		}
		if statusErr.StatusCode != status {
			t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, status)
		}
	}
}

func TestFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newDownloader(t, 1<<20).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("error = %v, want ErrEmptyBody", err)
	}
}

func TestFetchTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{0x1}, 2048))
	}))
	defer srv.Close()

	_, err := newDownloader(t, 1024).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("error = %v, want ErrTooLarge", err)
	}
}

func TestFetchExactlyAtCapPasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{0x1}, 1024))
	}))
	defer srv.Close()

	body, err := newDownloader(t, 1024).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(body) != 1024 {
		t.Errorf("body = %d bytes, want 1024", len(body))
	}
}

func TestFetchRejectsNonHTTPScheme(t *testing.T) {
	for _, raw := range []string{"ftp://example.com/clip.mp4", "file:///etc/passwd", "not a url at all"} {
		if _, err := newDownloader(t, 1<<20).Fetch(context.Background(), raw); err == nil {
			t.Errorf("Fetch(%q) succeeded, want error", raw)
		}
	}
}

func TestFetchContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDownloader(t, 1<<20).Fetch(ctx, srv.URL)
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}

func TestFetchNoRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "flaky", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newDownloader(t, 1<<20).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("server hit %d times, want exactly 1", calls)
	}
}
