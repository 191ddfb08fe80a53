package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/sondeo/sondeo/pkg/collectors"
	"github.com/sondeo/sondeo/pkg/models"
	"github.com/sondeo/sondeo/pkg/probe"
	"github.com/sondeo/sondeo/pkg/server"
)

func init() {
	log.Logger = zerolog.Nop()
}

type usersCollector struct{}

func (c *usersCollector) Collect(ctx context.Context) (map[string]any, error) {
	return map[string]any{"total": 3}, nil
}

func newTestServer(token string) *httptest.Server {
	registry := collectors.NewRegistry()
	registry.Add("users", &usersCollector{})
	prober := probe.NewProber(http.DefaultClient, time.Second)
	api := server.NewAPI(&models.Configuration{Token: token}, registry, prober)
	return httptest.NewServer(api.Gin)
}

func TestGetStats(t *testing.T) {
	srv := newTestServer("")
	defer srv.Close()

	c := NewAPIClient(http.DefaultClient, srv.URL+"/", "")
	stats, err := c.GetStats(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, models.StatsResponse{
		"users": map[string]any{"total": float64(3)},
	}, stats)
}

func TestGetStatsUnauthorized(t *testing.T) {
	srv := newTestServer("sondeo-secret")
	defer srv.Close()

	c := NewAPIClient(http.DefaultClient, srv.URL, "wrong")
	_, err := c.GetStats(context.TODO())
	assert.ErrorContains(t, err, "unexpected status code: 401")

	c = NewAPIClient(http.DefaultClient, srv.URL, "sondeo-secret")
	_, err = c.GetStats(context.TODO())
	assert.NoError(t, err)
}

func TestProbe(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer target.Close()

	srv := newTestServer("")
	defer srv.Close()

	c := NewAPIClient(http.DefaultClient, srv.URL, "")
	resp, err := c.Probe(context.TODO(), models.ProbeRequest{URL: target.URL})
	assert.NoError(t, err)
	assert.True(t, resp.Reachable)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	_, err = c.Probe(context.TODO(), models.ProbeRequest{URL: "ftp://nope"})
	assert.ErrorContains(t, err, "unexpected status code: 400")
}
