package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWriter_WithinLimit(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 64}

	body := []byte(`{"statusData":[]}`)
	n, err := cw.Write(body)
	require.NoError(t, err)
	assert.Equal(t, len(body), n)

	assert.False(t, cw.truncated())
	assert.Equal(t, body, cw.buf.Bytes())
	// The client sees the same bytes regardless of capture.
	assert.Equal(t, body, rec.Body.Bytes())
}

func TestCaptureWriter_OverLimitIsNotCacheable(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	body := bytes.Repeat([]byte("x"), 25)
	_, err := cw.Write(body[:8])
	require.NoError(t, err)
	_, err = cw.Write(body[8:])
	require.NoError(t, err)

	// The full body still reached the client untouched.
	assert.Equal(t, body, rec.Body.Bytes())

	// The capture is incomplete, so it must be flagged and never stored.
	assert.True(t, cw.truncated())
	assert.LessOrEqual(t, cw.buf.Len(), 10)
}

func TestCaptureWriter_StatusPassThrough(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 64}

	cw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, cw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
