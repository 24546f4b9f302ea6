package rsvc

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Audience mirrors the fields of a contact audience.
type Audience struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (c *Client) CreateAudience(ctx context.Context, name string) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Audiences.CreateWithContext(ctx, &resend.CreateAudienceRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("audiences.Create failed: %w", err)
	}

	return resp.Id, nil
}

func (c *Client) ListAudiences(ctx context.Context) ([]Audience, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Audiences.ListWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("audiences.List failed: %w", err)
	}

	audiences := make([]Audience, 0, len(resp.Data))
	for _, a := range resp.Data {
		audiences = append(audiences, Audience{
			ID:        a.Id,
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
		})
	}

	return audiences, nil
}

func (c *Client) GetAudience(ctx context.Context, audienceID string) (*Audience, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	a, err := c.client.Audiences.GetWithContext(ctx, audienceID)
	if err != nil {
		return nil, fmt.Errorf("audiences.Get failed: %w", err)
	}

	return &Audience{
		ID:        a.Id,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}, nil
}

func (c *Client) DeleteAudience(ctx context.Context, audienceID string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Audiences.RemoveWithContext(ctx, audienceID); err != nil {
		return fmt.Errorf("audiences.Remove failed: %w", err)
	}

	return nil
}
