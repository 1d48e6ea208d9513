package geoloc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// A wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type retryableHttpLogger struct {
	inner *zap.Logger
}

func (r retryableHttpLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHttpLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHttpLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHttpLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}

// A single attempt is made. Whatever status comes back is handed to the caller.
func checkRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

type realClient struct {
	client *retryablehttp.Client
}

// newRealClient builds a client that never retries. A zero timeout keeps
// the net/http default, which is no timeout.
func newRealClient(timeout time.Duration, logger *zap.Logger) *realClient {
	client := &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: timeout},
		RetryMax:     0,
		RetryWaitMin: 0,
		RetryWaitMax: 0,
		Backoff:      retryablehttp.DefaultBackoff,
		CheckRetry:   checkRetry,
		Logger:       retryableHttpLogger{inner: logger},
	}
	client.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
		logger.Debug(
			"response received",
			zap.Stringer("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode),
		)
	}
	return &realClient{client: client}
}

func (c *realClient) Query(ctx context.Context, resource *url.URL) (int, []byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, resource.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create http request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("http get %s: %w", resource, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}
