// Package rsvc wraps the Resend API client with one method per exposed operation.
package rsvc

import (
	"context"
	"time"

	"github.com/resend/resend-go/v2"
)

// New creates a Client. timeout bounds each upstream call; 0 means no bound.
func New(apiKey string, timeout time.Duration) *Client {
	return &Client{
		client:  resend.NewClient(apiKey),
		timeout: timeout,
	}
}

type Client struct {
	client  *resend.Client
	timeout time.Duration
}

func (c *Client) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}
