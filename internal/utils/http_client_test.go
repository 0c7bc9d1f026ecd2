package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://a", 3*time.Second)

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", got)
	}
}

func TestHTTPClient_ResolvesBaseURLAndSendsHeaders(t *testing.T) {
	var gotPath, gotAccept, gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotTrace = r.Header.Get("X-Trace-ID")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second).WithTraceID("trace-1")

	resp, err := client.R().Get("/todos")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if gotPath != "/todos" {
		t.Errorf("expected path /todos, got %s", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %s", gotAccept)
	}
	if gotTrace != "trace-1" {
		t.Errorf("expected X-Trace-ID trace-1, got %s", gotTrace)
	}
}
