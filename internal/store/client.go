// Package store implements the remote JSON document store client. The site
// content lives in one main document; the image library is spread across a
// fixed set of single-image shard documents to stay under the provider's
// per-document size limit.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/retry"
)

// ShardCount is the fixed number of image shard documents. It is also the
// hard upper bound on the image library.
const ShardCount = 10

const apiKeyHeader = "X-Master-Key"

// ErrLibraryCapacity is returned by SaveContent before any network call
// when the image library does not fit the shard set.
var ErrLibraryCapacity = errors.New("image library exceeds shard capacity")

// ErrShardConfig is returned before any network call when the configured
// shard id list does not cover the fixed shard set.
var ErrShardConfig = errors.New("shard id list does not match shard set")

// StatusError reports a non-2xx response from the document store.
type StatusError struct {
	Target string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("document %s: status %d: %s", e.Target, e.Status, e.Body)
}

// Client talks to a JSON-bin style document service: GET {base}/{id}/latest,
// PUT {base}/{id}, POST {base} to create, API key in a header.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.Config
	log     logger.Logger
}

// NewClient creates a store client. httpClient may be nil, in which case a
// default client is used.
func NewClient(baseURL string, httpClient *http.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		retry:   retry.DefaultConfig(),
		log:     log,
	}
}

// shardDoc is the shape of one image shard document.
type shardDoc struct {
	Library []string `json:"library"`
}

// FetchContent fetches the main document and all shard documents, and
// returns the main document with its library rebuilt from the shards.
//
// A failed main fetch returns an error so the caller can fall back to the
// next data tier. A failed shard fetch is logged and that shard's image is
// simply omitted: a partial library beats no content at all.
func (c *Client) FetchContent(ctx context.Context, apiKey, mainID string, shardIDs []string) (map[string]any, error) {
	if mainID == "" {
		return nil, errors.New("main document id is required")
	}
	if len(shardIDs) != ShardCount {
		return nil, fmt.Errorf("%w: %d ids, %d shards", ErrShardConfig, len(shardIDs), ShardCount)
	}

	var main map[string]any
	if err := c.getDocument(ctx, apiKey, mainID, &main); err != nil {
		return nil, fmt.Errorf("fetch main document: %w", err)
	}
	if main == nil {
		main = map[string]any{}
	}

	// Fan out the shard fetches, keep shard order in the rebuilt library.
	images := make([]string, len(shardIDs))
	var wg sync.WaitGroup
	for i, shardID := range shardIDs {
		wg.Add(1)
		go func(i int, shardID string) {
			defer wg.Done()
			var doc shardDoc
			if err := c.getDocument(ctx, apiKey, shardID, &doc); err != nil {
				c.log.Warn("Shard fetch failed, omitting image",
					logger.String("shard_id", shardID),
					logger.Int("shard_index", i),
					logger.Error(err),
				)
				return
			}
			if len(doc.Library) > 0 {
				images[i] = doc.Library[0]
			}
		}(i, shardID)
	}
	wg.Wait()

	library := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			library = append(library, img)
		}
	}
	main["library"] = library

	return main, nil
}

// SaveContent writes the content to the main document (library excluded)
// and one image per shard document. All writes run in parallel and all are
// allowed to finish; failures are aggregated into a single error naming
// every failed target.
func (c *Client) SaveContent(ctx context.Context, apiKey, mainID string, shardIDs []string, content *models.SiteContent) error {
	if mainID == "" {
		return errors.New("main document id is required")
	}
	if len(shardIDs) != ShardCount {
		return fmt.Errorf("%w: %d ids, %d shards", ErrShardConfig, len(shardIDs), ShardCount)
	}
	if len(content.Library) > len(shardIDs) {
		return fmt.Errorf("%w: %d images, %d shards",
			ErrLibraryCapacity, len(content.Library), len(shardIDs))
	}

	mainDoc, err := mainDocument(content)
	if err != nil {
		return fmt.Errorf("encode main document: %w", err)
	}

	type target struct {
		id      string
		payload any
	}
	targets := make([]target, 0, len(shardIDs)+1)
	targets = append(targets, target{id: mainID, payload: mainDoc})
	for i, shardID := range shardIDs {
		doc := shardDoc{Library: []string{}}
		if i < len(content.Library) {
			doc.Library = []string{content.Library[i]}
		}
		targets = append(targets, target{id: shardID, payload: doc})
	}

	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t target) {
			defer wg.Done()
			if err := c.putDocument(ctx, apiKey, t.id, t.payload); err != nil {
				errs[i] = fmt.Errorf("save %s: %w", t.id, err)
			}
		}(i, t)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// TestConnection verifies the main document is reachable with the key.
func (c *Client) TestConnection(ctx context.Context, apiKey, mainID string) error {
	var doc map[string]any
	return c.getDocument(ctx, apiKey, mainID, &doc)
}

// mainDocument serializes the content without its library, which lives in
// the shards. Unknown extra fields survive via the model's marshaler.
func mainDocument(content *models.SiteContent) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	delete(doc, "library")
	return doc, nil
}

func (c *Client) getDocument(ctx context.Context, apiKey, id string, out any) error {
	url := fmt.Sprintf("%s/%s/latest", c.baseURL, id)
	return retry.Do(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set(apiKeyHeader, apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Target: id, Status: resp.StatusCode, Body: readBody(resp.Body)}
		}
		return decodeRecord(resp.Body, out)
	})
}

func (c *Client) putDocument(ctx context.Context, apiKey, id string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Target: id, Status: resp.StatusCode, Body: readBody(resp.Body)}
	}
	io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for keep-alive
	return nil
}

// decodeRecord unwraps the provider's {"record": ...} envelope when present
// and decodes directly otherwise, so plain JSON stores work too.
func decodeRecord(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var envelope struct {
		Record json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Record) > 0 {
		return json.Unmarshal(envelope.Record, out)
	}
	return json.Unmarshal(data, out)
}

func readBody(r io.Reader) string {
	const maxErrBody = 512
	data, err := io.ReadAll(io.LimitReader(r, maxErrBody))
	if err != nil {
		return ""
	}
	return string(data)
}
