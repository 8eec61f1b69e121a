package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/jadebrew/site-manager/internal/logger"
)

// Provision creates the fixed set of empty shard documents and returns
// their ids in shard order. The main document id comes from configuration
// and is not created here. If any shard creation fails the whole operation
// fails with an itemized per-shard error list.
func (c *Client) Provision(ctx context.Context, apiKey string) ([]string, error) {
	ids := make([]string, ShardCount)
	errs := make([]error, ShardCount)

	var wg sync.WaitGroup
	for i := range ShardCount {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := c.createDocument(ctx, apiKey, shardDoc{Library: []string{}})
			if err != nil {
				errs[i] = fmt.Errorf("create shard %d: %w", i, err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c.log.Info("Provisioned image shards",
		logger.Int("count", ShardCount),
		logger.Strings("shard_ids", ids),
	)
	return ids, nil
}

func (c *Client) createDocument(ctx context.Context, apiKey string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Target: "create", Status: resp.StatusCode, Body: readBody(resp.Body)}
	}

	var created struct {
		Metadata struct {
			ID string `json:"id"`
		} `json:"metadata"`
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.Metadata.ID != "" {
		return created.Metadata.ID, nil
	}
	if created.ID != "" {
		return created.ID, nil
	}
	return "", errors.New("create response carried no document id")
}
