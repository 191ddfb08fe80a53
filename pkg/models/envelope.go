package models

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CORS headers attached to every response, success or failure.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Envelope is the standardized wrapper applied to all outbound responses:
// a JSON body, a status code, a fixed content type and permissive CORS
// headers.
type Envelope struct {
	Payload any
	Status  int
}

func NewEnvelope(payload any) *Envelope {
	return &Envelope{
		Payload: payload,
		Status:  http.StatusOK,
	}
}

func (e *Envelope) WithStatus(status int) *Envelope {
	e.Status = status
	return e
}

// Headers returns the headers carried by every envelope.
func (e *Envelope) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	for k, v := range corsHeaders {
		headers[k] = v
	}
	return headers
}

// Body serializes the payload. A payload that cannot be represented as
// JSON is coerced to its string form instead of failing, so Body never
// returns an error.
func (e *Envelope) Body() []byte {
	body, err := json.Marshal(e.Payload)
	if err != nil {
		body, _ = json.Marshal(fmt.Sprint(e.Payload))
	}
	return body
}

// Write emits the envelope onto an http.ResponseWriter.
func (e *Envelope) Write(w http.ResponseWriter) {
	for k, v := range e.Headers() {
		w.Header().Set(k, v)
	}
	w.WriteHeader(e.Status)
	_, _ = w.Write(e.Body())
}
