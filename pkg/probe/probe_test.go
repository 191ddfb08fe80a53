package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/sondeo/sondeo/pkg/models"
)

func init() {
	log.Logger = zerolog.Nop()
}

func TestCheckReachable(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := NewProber(http.DefaultClient, time.Second)
	resp, err := p.Check(context.TODO(), models.ProbeRequest{URL: server.URL})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.True(t, resp.Reachable)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Error)

	resp, err = p.Check(context.TODO(), models.ProbeRequest{URL: server.URL, Method: "post"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.True(t, resp.Reachable)
}

func TestCheckUnreachable(t *testing.T) {
	p := NewProber(http.DefaultClient, time.Second)

	resp, err := p.Check(context.TODO(), models.ProbeRequest{URL: "http://127.0.0.1:1/hook"})
	assert.NoError(t, err)
	assert.False(t, resp.Reachable)
	assert.Equal(t, 0, resp.StatusCode)
	assert.NotEmpty(t, resp.Error)
}

func TestCheckInvalidRequest(t *testing.T) {
	p := NewProber(http.DefaultClient, time.Second)

	cases := []models.ProbeRequest{
		{},
		{URL: "not a url"},
		{URL: "ftp://example.com"},
		{URL: "http://example.com", Method: "DELETE"},
	}
	for _, req := range cases {
		resp, err := p.Check(context.TODO(), req)
		assert.Error(t, err, req)
		assert.Nil(t, resp)
	}
}
