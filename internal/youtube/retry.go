package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
)

// RetryConfig configures retries of transient outbound failures.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns the retry policy used when none is configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     2,
		InitialBackoff: 250 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// statusError is a retryable HTTP status.
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// isTransient reports whether err is worth another attempt.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, io.ErrUnexpectedEOF)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// do sends the request built by newRequest, retrying transient failures
// with capped exponential backoff. The caller owns the returned body.
func (c *Client) do(ctx context.Context, op string, newRequest func(context.Context) (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	backoff := c.retry.InitialBackoff

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		resp, err := c.send(ctx, newRequest)
		if err == nil {
			if attempt > 0 {
				logging.Info("youtube %s succeeded on retry %d", op, attempt)
			}
			metrics.ProviderRequestsTotal.WithLabelValues(op, "success").Inc()
			return resp, nil
		}

		lastErr = err
		if !isTransient(err) {
			break
		}

		// Don't sleep after the last attempt
		if attempt < c.retry.MaxRetries {
			metrics.ProviderRetriesTotal.WithLabelValues(op).Inc()
			logging.Debug("youtube %s failed (%v), retrying in %v (attempt %d/%d)",
				op, err, backoff, attempt+1, c.retry.MaxRetries)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				metrics.ProviderRequestsTotal.WithLabelValues(op, "error").Inc()
				return nil, ctx.Err()
			}

			backoff *= 2
			if backoff > c.retry.MaxBackoff {
				backoff = c.retry.MaxBackoff
			}
		}
	}

	metrics.ProviderRequestsTotal.WithLabelValues(op, "error").Inc()
	return nil, fmt.Errorf("youtube %s: %w", op, lastErr)
}

func (c *Client) send(ctx context.Context, newRequest func(context.Context) (*http.Request, error)) (*http.Response, error) {
	req, err := newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if isRetryableStatus(resp.StatusCode) {
		drain(resp)
		return nil, &statusError{StatusCode: resp.StatusCode}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	resp.Body.Close()
}
