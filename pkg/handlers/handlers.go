// Package handlers provides HTTP response utilities.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondXML writes an XML document with the given status code and data.
// contentType selects between application/xml and text/xml.
func RespondXML(w http.ResponseWriter, status int, contentType string, data any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	io.WriteString(w, xml.Header)
	xml.NewEncoder(w).Encode(data)
}

// RespondText writes a plain text body.
func RespondText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, text)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
