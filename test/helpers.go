package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Backend is a scripted chat server keyed by question.
type Backend struct {
	*httptest.Server

	mu        sync.Mutex
	questions []string
}

// NewBackend answers each question with the JSON body found in replies.
// Questions without a reply get a 500.
func NewBackend(t *testing.T, replies map[string]string) *Backend {
	t.Helper()

	b := &Backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q := r.PostForm.Get("question")

		b.mu.Lock()
		b.questions = append(b.questions, q)
		b.mu.Unlock()

		body, ok := replies[strings.ToLower(q)]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *Backend) Questions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.questions...)
}
