package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sondeo/sondeo/pkg/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	HTTPClient
	BaseURL string
	Token   string
}

func NewAPIClient(client HTTPClient, baseURL string, token string) *APIClient {
	return &APIClient{
		HTTPClient: client,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Token:      token,
	}
}

func (c *APIClient) GetStats(ctx context.Context) (models.StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/sondeo/1.0/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats models.StatsResponse
	err = c.do(req, &stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *APIClient) Probe(ctx context.Context, probeReq models.ProbeRequest) (*models.ProbeResponse, error) {
	body, err := json.Marshal(probeReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/sondeo/1.0/probe", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var probeResp models.ProbeResponse
	err = c.do(req, &probeResp)
	if err != nil {
		return nil, err
	}
	return &probeResp, nil
}

func (c *APIClient) do(req *http.Request, out any) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body models.ErrorResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		if err != nil {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, body.Error)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
