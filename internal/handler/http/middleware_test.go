// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "", wantErr: ErrEmptyAuthorizationHeader},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer  ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		token      models.Token
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + testToken, token: models.Token{OwnerID: testOwner}, wantStatus: http.StatusOK},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token x", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + testToken, parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			if strings.HasPrefix(tt.header, "Bearer ") {
				deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(tt.token, tt.parseErr)
			}

			var gotOwner string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotOwner, _ = utils.GetOwnerIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testOwner, gotOwner)
			}
		})
	}
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var fromCtx *zerolog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = log.Ctx(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
		assert.NotNil(t, fromCtx)
	})

	t.Run("client id kept", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, id)

		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)
		assert.Equal(t, id, rec.Header().Get(traceIDHeader))
	})

	t.Run("malformed client id replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "<script>")

		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)
		got := rec.Header().Get(traceIDHeader)
		assert.NotEqual(t, "<script>", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "created", status: http.StatusCreated, body: "done", wantLevel: "info"},
		{name: "conflict", status: http.StatusConflict, body: "note already exists", wantLevel: "warn"},
		{name: "failure", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/notes/", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, `"method":"POST"`)
			assert.Contains(t, out, `"uri":"/api/notes/"`)
			assert.Contains(t, out, fmt.Sprintf(`"status":%d`, tt.status))
			assert.Contains(t, out, fmt.Sprintf(`"size":%d`, len(tt.body)))
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &statusRecorder{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, rw.statusCode())

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)
	_, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rw.statusCode())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 5, rw.size)
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write(append([]byte("echo: "), body...))
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hi"))
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "echo: hi", string(body))
	})

	t.Run("plain without accept header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hi")))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "echo: hi", rec.Body.String())
	})

	t.Run("decompresses request body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, "packed")))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, "echo: packed", rec.Body.String())
	})

	t.Run("rejects broken gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no content stays uncompressed", func(t *testing.T) {
		noContent := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(noContent).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/only-get", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/only-get", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-get", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_NoteRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/notes/n1"},
		{http.MethodGet, "/api/notes/n1"},
		{http.MethodPut, "/api/notes/"},
		{http.MethodGet, "/api/user/login"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrNoOwnerID, http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrUnauthorizedAccessToDifferentOwner, http.StatusForbidden},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, msg := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
