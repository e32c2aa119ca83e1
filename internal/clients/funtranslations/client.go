package funtranslations

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pokedex/internal/domain/common"
	"pokedex/internal/httpclient"
	"pokedex/internal/logging"
)

const serviceName = "funtranslations"

// RetryPolicy is the explicit, named retry configuration for translation
// calls. It is injected into this client only; the species client runs with
// no retries at all, and that asymmetry is intentional wiring.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    5 * time.Second,
}

// backoff returns the delay before the given retry. The base delay doubles
// each time, capped at MaxDelay.
func (p RetryPolicy) backoff(retry int) time.Duration {
	delay := p.BaseDelay << uint(retry)
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

type Client struct {
	http   *httpclient.Client
	policy RetryPolicy
	logger logging.Logger
}

func New(baseURL string, timeout time.Duration, policy RetryPolicy, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "funtranslations_http"))
	if err != nil {
		return nil, err
	}

	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	return &Client{
		http:   httpCli,
		policy: policy,
		logger: logger,
	}, nil
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Contents struct {
		Translated string `json:"translated"`
	} `json:"contents"`
}

// Translate rewrites text in the given style. Network failures and 5xx
// responses are retried with exponential backoff up to the policy's attempt
// budget. A 429 surfaces immediately as RateLimitedError without consuming
// any retries; other 4xx responses surface immediately as UpstreamError.
func (c *Client) Translate(ctx context.Context, text, strategy string) (string, error) {
	path := strategy + ".json"

	var lastErr error
	for attempt := 0; attempt < c.policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", common.UpstreamError{Service: serviceName, Detail: ctx.Err().Error()}
			case <-time.After(c.policy.backoff(attempt - 1)):
			}
		}

		var res translateResponse
		err := c.http.PostJSON(ctx, path, translateRequest{Text: text}, &res)
		if err == nil {
			return res.Contents.Translated, nil
		}

		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
			if httpErr.StatusCode == http.StatusTooManyRequests {
				return "", common.RateLimitedError{Service: serviceName}
			}
			return "", common.UpstreamError{
				Service: serviceName,
				Status:  httpErr.StatusCode,
				Detail:  httpErr.Message,
			}
		}

		lastErr = err
		c.logger.Debug("translation attempt failed",
			"strategy", strategy,
			"attempt", attempt+1,
			"max_attempts", c.policy.MaxAttempts,
			"error", err,
		)
	}

	var httpErr *httpclient.HTTPError
	if errors.As(lastErr, &httpErr) {
		return "", common.UpstreamError{
			Service: serviceName,
			Status:  httpErr.StatusCode,
			Detail:  httpErr.Message,
		}
	}
	return "", common.UpstreamError{Service: serviceName, Detail: lastErr.Error()}
}
