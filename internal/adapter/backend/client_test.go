package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-openapi/runtime"
	"github.com/google/go-cmp/cmp"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

type requestLog struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (l *requestLog) at(i int) recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.requests[i]
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		log.mu.Lock()
		log.requests = append(log.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		log.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, log
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	if _, err := New("localhost:3001", time.Second, nil); err == nil {
		t.Fatal("expected error for url without scheme")
	}
}

func TestClient_ListDecodesRecordsInServerOrder(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id":2,"brand":"Giant","model":"Escape","type":"Hybrid","color":"Blue","price":300,"image":"g.png"},
			{"id":"a1","brand":"Trek","model":"Marlin","type":"MTB","color":"Red","price":500.5,"image":"x.png"}
		]`)
	})

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []*domain.Bicycle{
		{ID: "2", Brand: "Giant", Model: "Escape", Type: "Hybrid", Color: "Blue", Price: 300, Image: "g.png"},
		{ID: "a1", Brand: "Trek", Model: "Marlin", Type: "MTB", Color: "Red", Price: 500.5, Image: "x.png"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if requests.at(0).Method != http.MethodGet || requests.at(0).Path != "/bicycles" {
		t.Fatalf("unexpected request %+v", requests.at(0))
	}
}

func TestClient_ListErrorClasses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
		outcome string
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
			},
			check: func(t *testing.T, err error) {
				var apiErr *runtime.APIError
				if !errors.As(err, &apiErr) || apiErr.Code != http.StatusInternalServerError {
					t.Fatalf("expected APIError 500, got %v", err)
				}
			},
			outcome: "status_error",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `[{"id":1,`)
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("expected ErrDecode, got %v", err)
				}
			},
			outcome: "decode_error",
		},
		{
			name: "record without id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `[{"brand":"Trek"}]`)
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("expected ErrDecode, got %v", err)
				}
			},
			outcome: "decode_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)
			bicycles, err := client.List(context.Background())
			if err == nil {
				t.Fatalf("expected error, got %v", bicycles)
			}
			tt.check(t, err)
			if got := Outcome(err); got != tt.outcome {
				t.Fatalf("expected outcome %q, got %q", tt.outcome, got)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(url, time.Second, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.Get(context.Background(), "2")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if Outcome(err) != "transport_error" {
		t.Fatalf("unexpected outcome %q", Outcome(err))
	}
}

func TestClient_CreateSendsCoercedRecordWithoutID(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":9}`)
	})

	form := domain.Form{Brand: "Giant", Model: "Escape", Type: "Hybrid", Color: "Blue", Price: "300"}
	if err := client.Create(context.Background(), form.Bicycle()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := requests.at(0)
	if req.Method != http.MethodPost || req.Path != "/bicycles" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if !strings.HasPrefix(req.ContentType, "application/json") {
		t.Fatalf("unexpected content type %q", req.ContentType)
	}

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v (%q)", err, req.Body)
	}
	if _, ok := body["id"]; ok {
		t.Fatalf("create body must not carry an id: %q", req.Body)
	}
	if price, ok := body["price"].(float64); !ok || price != 300 {
		t.Fatalf("expected numeric price 300, got %#v", body["price"])
	}
}

func TestClient_UpdateAndDeleteTargetID(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx := context.Background()
	if err := client.Update(ctx, "7", &domain.Bicycle{Brand: "Trek", Price: 10}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := client.Delete(ctx, "7"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := []string{requests.at(0).Method + " " + requests.at(0).Path, requests.at(1).Method + " " + requests.at(1).Path}
	want := []string{"PUT /bicycles/7", "DELETE /bicycles/7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_DeleteNonSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	})

	err := client.Delete(context.Background(), "3")
	var apiErr *runtime.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
		t.Fatalf("expected APIError 404, got %v", err)
	}
}
