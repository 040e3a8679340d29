package server_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	h := newTestRouter()

	big := strings.Repeat("x", (1<<20)+1)
	rec := doRequest(t, h, http.MethodPost, "/tasks",
		`{"taskName":"big","description":"`+big+`"}`)

	// json decode fails once the reader hits the cap, surfacing as a 400.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
