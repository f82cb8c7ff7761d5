package handlers_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/controller-examples/pkg/handlers"
)

type pair struct {
	XMLName xml.Name `json:"-" xml:"pair"`
	First   string   `json:"first" xml:"first"`
	Last    string   `json:"last" xml:"last"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"message": "hello"})

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got["message"] != "hello" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondText(w, http.StatusOK, "Hello World !")

	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	if w.Body.String() != "Hello World !" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRespondXML(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondXML(w, http.StatusOK, "application/xml", pair{First: "a", Last: "b"})

	body := w.Body.String()
	if !strings.HasPrefix(body, "<?xml") {
		t.Errorf("body should start with XML header: %q", body)
	}

	var got pair
	if err := xml.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.First != "a" || got.Last != "b" {
		t.Errorf("got = %+v", got)
	}
}

func TestRespondError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := httptest.NewRecorder()
	handlers.RespondError(w, logger, http.StatusNotAcceptable, errors.New("nope"))

	if w.Code != http.StatusNotAcceptable {
		t.Errorf("status = %d", w.Code)
	}

	var got map[string]string
	json.Unmarshal(w.Body.Bytes(), &got)
	if got["error"] != "nope" {
		t.Errorf("error = %q", got["error"])
	}

	if !strings.Contains(buf.String(), "handler error") {
		t.Error("error should be logged")
	}
}

func TestNegotiate(t *testing.T) {
	offers := []string{"application/json", "application/xml", "text/xml"}

	tests := []struct {
		name    string
		accept  string
		want    string
		wantErr bool
	}{
		{"missing header", "", "application/json", false},
		{"wildcard", "*/*", "application/json", false},
		{"type wildcard", "application/*", "application/json", false},
		{"xml", "application/xml", "application/xml", false},
		{"text xml", "text/xml", "text/xml", false},
		{"weighted json", "application/json, application/xml;q=0.5", "application/json", false},
		{"weighted xml", "application/xml, application/json;q=0.9", "application/xml", false},
		{"unsupported", "text/html", "", true},
		{"refused json", "application/json;q=0, */*;q=0.1", "application/xml", false},
		{"specific beats wildcard", "*/*;q=0.5, text/xml", "text/xml", false},
		{"all refused", "*/*;q=0", "", true},
		{"explicit refusals", "application/json;q=0, application/xml;q=0, text/xml;q=0, */*", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			got, err := handlers.Negotiate(req, offers...)
			if tt.wantErr {
				if !errors.Is(err, handlers.ErrNotAcceptable) {
					t.Errorf("err = %v, want ErrNotAcceptable", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Negotiate() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Negotiate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNegotiate_NoOffers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := handlers.Negotiate(req); !errors.Is(err, handlers.ErrNotAcceptable) {
		t.Errorf("err = %v, want ErrNotAcceptable", err)
	}
}

func TestRespondNegotiated(t *testing.T) {
	data := pair{First: "Serge", Last: "Huber"}

	tests := []struct {
		name       string
		accept     string
		wantStatus int
		wantType   string
	}{
		{"default json", "", http.StatusOK, "application/json"},
		{"xml", "application/xml", http.StatusOK, "application/xml"},
		{"not acceptable", "image/png", http.StatusNotAcceptable, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			w := httptest.NewRecorder()
			handlers.RespondNegotiated(w, req, discardLogger(), http.StatusOK, data)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if ct := w.Header().Get("Content-Type"); ct != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantType)
			}

			if vary := w.Header().Get("Vary"); vary != "Accept" {
				t.Errorf("Vary = %q, want Accept", vary)
			}
		})
	}
}
