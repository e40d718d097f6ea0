// Package template fetches markdown document templates over HTTP or from disk.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

const maxTemplateSize = 1 << 20

// HTTPSource fetches <baseURL>/<kind>.md
type HTTPSource struct {
	baseURL    string
	client     *http.Client
	maxRetries uint64
	interval   time.Duration
	logger     *zap.Logger
}

// NewHTTPSource creates an HTTP template source. maxRetries 0 means a single attempt.
func NewHTTPSource(baseURL string, timeout time.Duration, maxRetries uint64, logger *zap.Logger) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		interval:   time.Second,
		logger:     logger,
	}
}

// Get downloads the template for kind
func (s *HTTPSource) Get(ctx context.Context, kind entities.DocumentKind) (string, error) {
	url := fmt.Sprintf("%s/%s.md", s.baseURL, kind)

	var body string
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("%w: %s", entities.ErrTemplateMissing, url))
		case resp.StatusCode >= 500:
			return fmt.Errorf("template server returned status %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("template server returned status %d", resp.StatusCode))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateSize))
		if err != nil {
			return err
		}
		body = string(data)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.interval
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(fetch, backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx)); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Template fetch failed",
				zap.String("kind", string(kind)),
				zap.String("url", url),
				zap.Error(err),
			)
		}
		if errors.Is(err, entities.ErrTemplateMissing) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", entities.ErrTemplateMissing, err)
	}
	return body, nil
}
