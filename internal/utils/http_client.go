package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
	defaultUserAgent    = "go-film-keeper"
)

// HTTPClient is the resty client used to talk to the movie catalog.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values fall back to
// resty defaults, except UserAgent which defaults to "go-film-keeper".
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	UserAgent string
}

// NewHTTPClient returns a client that speaks JSON to opts.BaseURL.
//
// Transport failures and gateway statuses (502, 503, 504) are retried up to
// opts.Retries times with exponential backoff. Other statuses are returned to
// the caller as is.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.Retries > 0 {
		client.
			SetRetryCount(opts.Retries).
			SetRetryWaitTime(defaultRetryWait).
			SetRetryMaxWaitTime(defaultRetryMaxWait).
			AddRetryCondition(retryOnGateway)
	}

	return &HTTPClient{Client: client}
}

func retryOnGateway(resp *resty.Response, err error) bool {
	if err != nil {
		return resp == nil || resp.Request == nil || resp.Request.Context().Err() == nil
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
