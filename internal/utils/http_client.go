package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second)
//	resp, err := client.R().Get("/api/hello")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client for baseURL whose requests time out
// after timeout. A zero timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// SetBearerToken sets the Authorization header sent with every request.
// An empty token removes it.
func (c *HTTPClient) SetBearerToken(token string) {
	if token == "" {
		c.Header.Del("Authorization")
		c.Token = ""
		return
	}
	c.SetAuthToken(token)
}
