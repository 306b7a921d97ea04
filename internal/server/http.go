package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fieldbuilder/internal/logging"
	"github.com/muurk/fieldbuilder/internal/urls"
)

// NoDataMessage is returned by GET before anything has been posted
const NoDataMessage = "No data has been posted yet."

// maxBodyBytes caps the accepted POST body size
const maxBodyBytes = 100 << 10

// NewHandler returns the record server's HTTP handler backed by slot.
func NewHandler(slot *Slot) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+urls.FieldPath, handlePostField(slot))
	mux.HandleFunc("GET "+urls.FieldPath, handleGetField(slot))
	return withRequestLogging(withCORS(mux))
}

func handlePostField(slot *Slot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
			return
		}
		logging.LogRequestBody(r.URL.Path, body)

		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			body = []byte("{}")
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, body); err != nil {
			logging.Warn("Rejected malformed JSON body",
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		saved := json.RawMessage(compact.Bytes())
		slot.Put(saved)
		logging.Info("Field slot overwritten", zap.Int("bytes", len(saved)))

		writeJSON(w, http.StatusOK, struct {
			Status string          `json:"status"`
			Saved  json.RawMessage `json:"saved"`
		}{Status: "ok", Saved: saved})
	}
}

func handleGetField(slot *Slot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saved, ok := slot.Get()
		if !ok {
			writeJSON(w, http.StatusOK, map[string]string{"message": NoDataMessage})
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Saved json.RawMessage `json:"saved"`
		}{Saved: saved})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to write JSON response", zap.Error(err))
	}
}

// withCORS allows any origin, like a browser-facing development backend.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")

		if r.Method == http.MethodOptions {
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Vary", "Access-Control-Request-Headers")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
