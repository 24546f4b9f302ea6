package rsvc

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// APIKey mirrors the fields of a listed API key. The secret token is only
// ever returned at creation time.
type APIKey struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateAPIKeyParams carries the fields of a new API key. Permission and
// DomainID are optional restrictions.
type CreateAPIKeyParams struct {
	Name       string
	Permission string
	DomainID   string
}

// CreateAPIKey returns the new key's ID and its one-time secret token.
func (c *Client) CreateAPIKey(ctx context.Context, p CreateAPIKeyParams) (id, token string, err error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.ApiKeys.CreateWithContext(ctx, &resend.CreateApiKeyRequest{
		Name:       p.Name,
		Permission: p.Permission,
		DomainId:   p.DomainID,
	})
	if err != nil {
		return "", "", fmt.Errorf("apiKeys.Create failed: %w", err)
	}

	return resp.Id, resp.Token, nil
}

func (c *Client) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.ApiKeys.ListWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("apiKeys.List failed: %w", err)
	}

	keys := make([]APIKey, 0, len(resp.Data))
	for _, k := range resp.Data {
		keys = append(keys, APIKey{
			ID:        k.Id,
			Name:      k.Name,
			CreatedAt: k.CreatedAt,
		})
	}

	return keys, nil
}

func (c *Client) DeleteAPIKey(ctx context.Context, apiKeyID string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.ApiKeys.RemoveWithContext(ctx, apiKeyID); err != nil {
		return fmt.Errorf("apiKeys.Remove failed: %w", err)
	}

	return nil
}
