package models

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeDefaults(t *testing.T) {
	e := NewEnvelope(map[string]int{"users": 3})
	assert.Equal(t, http.StatusOK, e.Status)
	assert.Equal(t, http.StatusTeapot, e.WithStatus(http.StatusTeapot).Status)
}

func TestEnvelopeBodyRoundTrip(t *testing.T) {
	cases := []any{
		map[string]any{"users": float64(3), "nested": map[string]any{"ok": true}},
		[]any{"a", float64(1), nil},
	}

	for _, payload := range cases {
		e := NewEnvelope(payload)

		var decoded any
		err := json.Unmarshal(e.Body(), &decoded)
		assert.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestEnvelopeBodyCoercesUnserializable(t *testing.T) {
	// channels have no JSON representation
	e := NewEnvelope(make(chan int))

	var decoded string
	err := json.Unmarshal(e.Body(), &decoded)
	assert.NoError(t, err)
	assert.Contains(t, decoded, "chan")
}

func TestEnvelopeWrite(t *testing.T) {
	w := httptest.NewRecorder()
	NewEnvelope(map[string]string{"status": "ok"}).WithStatus(http.StatusCreated).Write(w)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
