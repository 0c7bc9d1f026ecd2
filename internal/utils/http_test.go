package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, models.Todo{ID: 1, Task: "Buy Milk"}, http.StatusCreated); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, []models.Todo{}, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected '[]', got %s", w.Body.String())
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected an error for an unmarshalable value")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteError(w, "not_found", "todo not found", http.StatusNotFound); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if body.Kind != "not_found" || body.Message != "todo not found" {
		t.Errorf("unexpected body: %+v", body)
	}
}
