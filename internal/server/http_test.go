package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/fieldbuilder/internal/logging"
)

func doRequest(t *testing.T, h http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/field", nil)
	} else {
		req = httptest.NewRequest(method, "/api/field", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetBeforePost(t *testing.T) {
	h := NewHandler(&Slot{})

	rec := doRequest(t, h, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No data has been posted yet."}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestPostThenGet(t *testing.T) {
	h := NewHandler(&Slot{})

	rec := doRequest(t, h, http.MethodPost, `{"label":"Color"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","saved":{"label":"Color"}}`, rec.Body.String())

	rec = doRequest(t, h, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saved":{"label":"Color"}}`, rec.Body.String())
}

func TestPostOverwrites(t *testing.T) {
	h := NewHandler(&Slot{})

	doRequest(t, h, http.MethodPost, `{"label":"First"}`)
	doRequest(t, h, http.MethodPost, `{"label":"Second","choices":["a"]}`)

	rec := doRequest(t, h, http.MethodGet, "")
	assert.JSONEq(t, `{"saved":{"label":"Second","choices":["a"]}}`, rec.Body.String())
}

func TestPostAcceptsAnyJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"array", `[1,2]`, `{"status":"ok","saved":[1,2]}`},
		{"string", `"x"`, `{"status":"ok","saved":"x"}`},
		{"null", `null`, `{"status":"ok","saved":null}`},
		{"empty body", ``, `{"status":"ok","saved":{}}`},
		{"whitespace body", "  \n", `{"status":"ok","saved":{}}`},
		{"indented object", "{\n  \"label\": \"A\"\n}", `{"status":"ok","saved":{"label":"A"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/field", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewHandler(&Slot{}).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestPostNullFillsSlot(t *testing.T) {
	h := NewHandler(&Slot{})
	doRequest(t, h, http.MethodPost, `null`)

	rec := doRequest(t, h, http.MethodGet, "")
	assert.JSONEq(t, `{"saved":null}`, rec.Body.String())
}

func TestPostInvalidJSON(t *testing.T) {
	slot := &Slot{}
	h := NewHandler(slot)

	rec := doRequest(t, h, http.MethodPost, `{"label":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid JSON body"}`, rec.Body.String())

	_, ok := slot.Get()
	assert.False(t, ok, "a rejected body must not touch the slot")
}

func TestPostTooLarge(t *testing.T) {
	slot := &Slot{}
	body := `{"label":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rec := doRequest(t, NewHandler(slot), http.MethodPost, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	_, ok := slot.Get()
	assert.False(t, ok)
}

func TestUnknownRoutes(t *testing.T) {
	h := NewHandler(&Slot{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	h := NewHandler(&Slot{})

	req := httptest.NewRequest(http.MethodOptions, "/api/field", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))

	rec = doRequest(t, h, http.MethodGet, "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	h := NewHandler(&Slot{})
	doRequest(t, h, http.MethodPost, `{"label":`)

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/field", fields["path"])
	assert.EqualValues(t, http.StatusBadRequest, fields["status"])
}
