package clapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"video-id-finder/core/reconcile"
	"video-id-finder/core/utils"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

// HTTPDoer describes the HTTP client used by the attribute client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up file attributes by filename.
// It implements reconcile.AttributeLookup.
type Client struct {
	baseURL string
	token   string
	http    HTTPDoer
	limiter *rate.Limiter
}

// NewClient creates an attribute client from configuration.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("clapi base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid clapi base url")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return NewClientWithDoer(cfg, &http.Client{Timeout: time.Duration(timeout) * time.Second}), nil
}

// NewClientWithDoer creates an attribute client that sends requests through doer.
func NewClientWithDoer(cfg Config, doer HTTPDoer) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.Token),
		http:    doer,
		limiter: rate.NewLimiter(limit, 1),
	}
}

type attributeDTO struct {
	Filename string `json:"filename"`
	Course   any    `json:"course"`
	Segment  any    `json:"segment"`
}

// LookupByFilename returns every attribute record for filename.
// A 404 from the service means it knows nothing about the file.
func (c *Client) LookupByFilename(ctx context.Context, filename string) ([]reconcile.FileAttributes, error) {
	records, err := c.lookup(ctx, filename)
	if err != nil {
		return nil, reconcile.TransportError(err, "failed to look up file attributes")
	}
	return records, nil
}

func (c *Client) lookup(ctx context.Context, filename string) ([]reconcile.FileAttributes, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/file_attributes?" + url.Values{"filename": {filename}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %q", filename)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []reconcile.FileAttributes{}, nil
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Newf("lookup %q returned %d", filename, resp.StatusCode)
	}

	var body []attributeDTO
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "decode lookup %q", filename)
	}

	records := make([]reconcile.FileAttributes, 0, len(body))
	for _, a := range body {
		name := a.Filename
		if name == "" {
			name = filename
		}
		records = append(records, reconcile.FileAttributes{
			Filename:         name,
			CourseIdentifier: utils.ToString(a.Course),
			SegmentID:        utils.ToString(a.Segment),
		})
	}
	return records, nil
}
