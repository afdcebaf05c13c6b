package threeplay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"video-id-finder/core/reconcile"
	"video-id-finder/core/utils"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

// HTTPDoer describes the HTTP client used by the vendor client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client lists batches and pages of files from the transcription vendor.
// It implements reconcile.BatchLister and reconcile.FilePager.
type Client struct {
	baseURL string
	apiKey  string
	perPage int
	http    HTTPDoer
	limiter *rate.Limiter
}

// NewClient creates a vendor client from configuration.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("threeplay api key is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid threeplay base url")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return NewClientWithDoer(cfg, &http.Client{Timeout: time.Duration(timeout) * time.Second}), nil
}

// NewClientWithDoer creates a vendor client that sends requests through doer.
func NewClientWithDoer(cfg Config, doer HTTPDoer) *Client {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = 100
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		perPage: perPage,
		http:    doer,
		limiter: rate.NewLimiter(limit, 1),
	}
}

type batchDTO struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

type fileDTO struct {
	ID      any    `json:"id"`
	Name    string `json:"name"`
	BatchID any    `json:"batch_id"`
}

// ListBatches returns every batch of the account.
func (c *Client) ListBatches(ctx context.Context) ([]reconcile.Batch, error) {
	var body struct {
		Batches []batchDTO `json:"batches"`
	}
	if err := c.getJSON(ctx, "/batches", nil, &body); err != nil {
		return nil, reconcile.TransportError(err, "failed to list threeplay batches")
	}

	batches := make([]reconcile.Batch, 0, len(body.Batches))
	for _, b := range body.Batches {
		batches = append(batches, reconcile.Batch{
			ID:   utils.ToString(b.ID),
			Name: b.Name,
		})
	}
	return batches, nil
}

// ListFilesPage returns the files of the given 1-based page. An empty slice means
// the previous page was the last one.
func (c *Client) ListFilesPage(ctx context.Context, page int) ([]reconcile.FileRecord, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.perPage))

	var body struct {
		Files []fileDTO `json:"files"`
	}
	if err := c.getJSON(ctx, "/files", query, &body); err != nil {
		return nil, reconcile.TransportError(err, fmt.Sprintf("failed to list threeplay files page %d", page))
	}

	files := make([]reconcile.FileRecord, 0, len(body.Files))
	for _, f := range body.Files {
		files = append(files, reconcile.FileRecord{
			ID:      utils.ToString(f.ID),
			Name:    f.Name,
			BatchID: utils.ToString(f.BatchID),
		})
	}
	return files, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apikey", c.apiKey)
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Newf("GET %s returned %d", path, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}
	return nil
}
