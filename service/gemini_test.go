package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func modelReply(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{
				map[string]any{"text": text},
			}}},
		},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return body
}

func TestGenerateContent_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-3-flash-preview:generateContent") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Fatalf("unexpected api key header: %q", r.Header.Get("x-goog-api-key"))
		}
		raw, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(raw), "hello there") {
			t.Fatalf("prompt missing from request body: %s", raw)
		}
		if strings.Contains(string(raw), "responseMimeType") {
			t.Fatalf("unexpected json response config: %s", raw)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(modelReply(t, "general kenobi"))
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "test-key")
	client.baseURL = server.URL

	text, err := client.GenerateContent(context.Background(), "hello there", GenerateOptions{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if text != "general kenobi" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateContent_JSONResponseRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(raw), `"responseMimeType":"application/json"`) {
			t.Fatalf("json mime type missing from request body: %s", raw)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(modelReply(t, `{"ok":true}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "test-key")
	client.baseURL = server.URL

	text, err := client.GenerateContent(context.Background(), "give me json", GenerateOptions{JSONResponse: true})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if text != `{"ok":true}` {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateContent_NoKeyFailsWithoutRequest(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "  ")
	client.baseURL = server.URL

	if _, err := client.GenerateContent(context.Background(), "hi", GenerateOptions{}); err == nil {
		t.Fatal("expected error")
	}
	if requests != 0 {
		t.Fatalf("expected no requests, got %d", requests)
	}
}

func TestGenerateContent_Non2xxReturnsAPIError(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid argument"))
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "test-key")
	client.baseURL = server.URL
	client.maxAttempts = 3
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond

	_, err := client.GenerateContent(context.Background(), "hi", GenerateOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid argument") {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestGenerateContent_RetriesTransientServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&attempts, 1)
		if current < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(modelReply(t, "eventually"))
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "test-key")
	client.baseURL = server.URL
	client.maxAttempts = 3
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond

	text, err := client.GenerateContent(context.Background(), "hi", GenerateOptions{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if text != "eventually" {
		t.Fatalf("unexpected text: %q", text)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateContent_EmptyCandidatesIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.Client(), "test-key")
	client.baseURL = server.URL

	if _, err := client.GenerateContent(context.Background(), "hi", GenerateOptions{}); err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}
