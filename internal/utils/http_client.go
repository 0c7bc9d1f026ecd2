package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client preconfigured for the todo API.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetAuthToken(token).Get("/todos")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose relative request URLs resolve
// against baseURL. A zero timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithTraceID sets the X-Trace-ID header on every request made by c.
func (c *HTTPClient) WithTraceID(traceID string) *HTTPClient {
	c.SetHeader("X-Trace-ID", traceID)
	return c
}
