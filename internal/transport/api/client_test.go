package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sandevgo/causette/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Ask(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       core.ServerResponse
		wantErr    error
		wantErrMsg string
	}{
		{
			name:   "text",
			status: http.StatusOK,
			body:   `{"type":"text","message":"Bonjour"}`,
			want:   core.TextResponse{Message: "Bonjour"},
		},
		{
			name:   "legacy string",
			status: http.StatusOK,
			body:   `"Salut"`,
			want:   core.TextResponse{Message: "Salut", Legacy: true},
		},
		{
			name:   "wikipedia",
			status: http.StatusOK,
			body:   `{"type":"wikipedia","title":"Paris","summary":"Capital of France","image":null,"url":"https://wiki/Paris"}`,
			want:   core.WikipediaResponse{Title: "Paris", Summary: "Capital of France", URL: "https://wiki/Paris"},
		},
		{
			name:   "error variant",
			status: http.StatusOK,
			body:   `{"type":"error","message":"Introuvable","search_url":"https://wiki/search"}`,
			want:   core.ErrorResponse{Message: "Introuvable", SearchURL: "https://wiki/search"},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `<html>oops</html>`,
			want:   core.UnknownResponse{},
		},
		{
			name:       "500 error",
			status:     http.StatusInternalServerError,
			body:       `{"type":"text","message":"ignored"}`,
			wantErr:    core.ErrServerStatus,
			wantErrMsg: "HTTP 500",
		},
		{
			name:       "404 error",
			status:     http.StatusNotFound,
			wantErr:    core.ErrServerStatus,
			wantErrMsg: "HTTP 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClientWithTimeout(server.URL, time.Second)
			got, err := client.Ask(context.Background(), "question")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_AskRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, core.CausetteUserAgent, r.Header.Get("User-Agent"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Qui a écrit « Les Misérables » & pourquoi ?", r.PostForm.Get("question"))
		fmt.Fprint(w, `"ok"`)
	}))
	defer server.Close()

	_, err := NewClientWithTimeout(server.URL, time.Second).Ask(context.Background(), "Qui a écrit « Les Misérables » & pourquoi ?")
	require.NoError(t, err)
}

func TestClient_AskTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewClientWithTimeout(server.URL, 50*time.Millisecond).Ask(context.Background(), "lent")
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrServerStatus)
	assert.Contains(t, err.Error(), "failed to reach backend")
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewClientWithTimeout(addr, time.Second).Ask(context.Background(), "allo")
	require.Error(t, err)
}
