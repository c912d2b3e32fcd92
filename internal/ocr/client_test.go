package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aferraro/badge-scanner/internal/common"
)

func testClient(t *testing.T, handler http.HandlerFunc, maxRetries uint64) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(common.OCRConfig{
		APIURL:     srv.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
	}, nil)
}

func TestRecognize(t *testing.T) {
	var gotAuth, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		var req recognizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if string(req.Image) != "fake-image" {
			t.Errorf("image = %q, want %q", req.Image, "fake-image")
		}
		_ = json.NewEncoder(w).Encode(recognizeResponse{Text: "John Doe\nAcme Corp"})
	}, 0)

	text, err := c.Recognize(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if text != "John Doe\nAcme Corp" {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotPath != "/v1/recognize" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestRecognizeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(recognizeResponse{Text: "ok"})
	}, 2)

	text, err := c.Recognize(context.Background(), []byte("img"), "")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if text != "ok" {
		t.Errorf("text = %q", text)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server hit %d times, want 2", n)
	}
}

func TestRecognizeClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad image", http.StatusBadRequest)
	}, 3)

	if _, err := c.Recognize(context.Background(), []byte("img"), ""); err == nil {
		t.Fatal("want error on 400")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1 (no retries on 4xx)", n)
	}
}

func TestRecognizeServiceErrorField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(recognizeResponse{Error: "unreadable image"})
	}, 3)

	if _, err := c.Recognize(context.Background(), []byte("img"), ""); err == nil {
		t.Fatal("want error when service reports one")
	}
}
