package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/aria-lang/seqstat-go/internal/config"
)

func TestRouter(t *testing.T) {
	var logs bytes.Buffer
	h := newRouter(log.New(&logs), config.Default())

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		want   string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, "OK"},
		{"home", http.MethodGet, "/", "", http.StatusOK, "/api/stats/"},
		{"stats", http.MethodPost, "/api/stats/fasta", ">r1\nACGT\n", http.StatusOK, `"n50":4`},
		{"not found", http.MethodGet, "/api/unknown", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}

	assert.Contains(t, logs.String(), "path=/health")
}
