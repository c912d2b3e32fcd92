package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/aferraro/badge-scanner/internal/common"
)

// Client calls the upstream OCR service: image bytes in, raw text out. The
// service is a black box; badge classification happens locally on whatever
// text it returns.
type Client struct {
	cfg        common.OCRConfig
	httpClient *http.Client
	logger     *slog.Logger
}

type recognizeRequest struct {
	Image    []byte `json:"image"` // base64 via encoding/json
	MimeType string `json:"mime_type,omitempty"`
}

type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func NewClient(cfg common.OCRConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Recognize posts the image and returns the raw newline-delimited text.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff up to the configured attempt count; 4xx responses are permanent.
func (c *Client) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	var text string
	operation := func() error {
		var err error
		text, err = c.recognizeOnce(ctx, image, mimeType)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.MaxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Error("ocr.recognize.failed", "error", err)
		return "", err
	}
	return text, nil
}

func (c *Client) recognizeOnce(ctx context.Context, image []byte, mimeType string) (string, error) {
	start := time.Now()

	body, err := json.Marshal(recognizeRequest{Image: image, MimeType: mimeType})
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/v1/recognize", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("ocr service %d: %s", resp.StatusCode, raw)
	}
	if resp.StatusCode != http.StatusOK {
		return "", backoff.Permanent(fmt.Errorf("ocr service %d: %s", resp.StatusCode, raw))
	}

	var out recognizeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", backoff.Permanent(fmt.Errorf("parse response: %w", err))
	}
	if out.Error != "" {
		return "", backoff.Permanent(fmt.Errorf("ocr service error: %s", out.Error))
	}

	c.logger.Debug("ocr.recognize.ok",
		"duration_ms", time.Since(start).Milliseconds(),
		"text_bytes", len(out.Text),
	)
	return out.Text, nil
}
