// Package ipfs implements the content-addressed metadata store client.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	shell "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"
)

var (
	// ErrStoreUnavailable indicates no usable connection to the content store.
	ErrStoreUnavailable = errors.New("content store unavailable")
	// ErrStoreWriteFailed indicates the store rejected or failed an upload.
	ErrStoreWriteFailed = errors.New("content store write failed")
	// ErrNotFound indicates the content identifier resolved to nothing.
	ErrNotFound = errors.New("content not found")
	// ErrMalformedContent indicates stored bytes are not valid UTF-8 JSON.
	ErrMalformedContent = errors.New("malformed content")
)

type (
	// Metrics records outcomes of content store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client uploads and fetches JSON metadata documents by content identifier.
type Client struct {
	sh      *shell.Shell
	metrics Metrics
	logger  *zap.Logger
}

// NewClient connects to the IPFS HTTP API at apiURL. A failed liveness probe
// does not fail construction: operations on a dead node report
// ErrStoreUnavailable instead, so metadata reads can degrade gracefully.
func NewClient(apiURL string, metrics Metrics, logger *zap.Logger) *Client {
	if apiURL == "" {
		logger.Warn("no ipfs api url configured, content store disabled")
		return &Client{metrics: metrics, logger: logger}
	}

	sh := shell.NewShell(apiURL)
	if !sh.IsUp() {
		logger.Warn("ipfs node is not responding, content store degraded", zap.String("api_url", apiURL))
	}
	return &Client{sh: sh, metrics: metrics, logger: logger}
}

// Upload serializes doc to canonical JSON, pins it on the store and returns
// its content identifier.
func (c *Client) Upload(ctx context.Context, doc map[string]any) (cid string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("upload", err, started)
	}()

	if c.sh == nil {
		return "", ErrStoreUnavailable
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: marshal metadata: %v", ErrStoreWriteFailed, err)
	}

	cid, err = c.sh.Add(bytes.NewReader(raw), shell.Pin(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	c.logger.Debug("metadata uploaded", zap.String("cid", cid), zap.Int("bytes", len(raw)))
	return cid, nil
}

// Fetch retrieves the document stored under cid and parses it as a JSON
// object. An "ipfs://" prefix on cid is accepted and stripped.
func (c *Client) Fetch(ctx context.Context, cid string) (doc map[string]any, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch", err, started)
	}()

	if c.sh == nil {
		return nil, ErrStoreUnavailable
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	cid = strings.TrimPrefix(cid, "ipfs://")
	if cid == "" {
		return nil, ErrNotFound
	}

	rc, err := c.sh.Cat(cid)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no link named") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cid)
		}
		return nil, fmt.Errorf("%w: cat %s: %v", ErrStoreUnavailable, cid, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, cid, err)
	}

	return ParseDocument(raw)
}

// ParseDocument decodes raw bytes as a UTF-8 JSON object. Anything else is
// reported as ErrMalformedContent so callers can substitute an empty document.
func ParseDocument(raw []byte) (map[string]any, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: not valid utf-8", ErrMalformedContent)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is not a json object", ErrMalformedContent)
	}
	return doc, nil
}
