// Package probe checks the reachability of webhook endpoints.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sondeo/sondeo/pkg/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Prober struct {
	HTTPClient
	Timeout time.Duration
	now     func() time.Time
}

func NewProber(client HTTPClient, timeout time.Duration) *Prober {
	return &Prober{
		HTTPClient: client,
		Timeout:    timeout,
		now:        time.Now,
	}
}

// Check issues a request against the target URL and reports its status
// and latency. Transport failures are part of the probe result, not an
// error: only an invalid request is rejected.
func (p *Prober) Check(ctx context.Context, req models.ProbeRequest) (*models.ProbeResponse, error) {
	method, err := validate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid probe request: %w", err)
	}

	start := p.now()
	resp, err := p.Do(httpReq)
	latency := p.now().Sub(start)
	if err != nil {
		log.Debug().Err(err).Str("url", req.URL).Msg("probe target unreachable")
		return &models.ProbeResponse{
			URL:       req.URL,
			Reachable: false,
			LatencyMS: float64(latency.Milliseconds()),
			Error:     err.Error(),
		}, nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return &models.ProbeResponse{
		URL:        req.URL,
		Reachable:  true,
		StatusCode: resp.StatusCode,
		LatencyMS:  float64(latency.Milliseconds()),
	}, nil
}

func validate(req models.ProbeRequest) (string, error) {
	if req.URL == "" {
		return "", fmt.Errorf("probe url is required")
	}

	target, err := url.Parse(req.URL)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return "", fmt.Errorf("probe url must be an absolute http(s) url")
	}

	method := strings.ToUpper(req.Method)
	switch method {
	case "":
		method = http.MethodGet
	case http.MethodGet, http.MethodPost, http.MethodHead:
	default:
		return "", fmt.Errorf("unsupported probe method: %s", req.Method)
	}
	return method, nil
}
