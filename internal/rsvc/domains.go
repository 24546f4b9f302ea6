package rsvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Domain mirrors the fields of a sending domain. Records holds the DNS
// records exactly as the API returned them.
type Domain struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status,omitempty"`
	Region    string          `json:"region,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	Records   json.RawMessage `json:"records,omitempty"`
}

// UpdateDomainParams carries the mutable tracking settings of a domain.
type UpdateDomainParams struct {
	ID            string
	OpenTracking  bool
	ClickTracking bool
	TLS           string
}

func (c *Client) CreateDomain(ctx context.Context, name, region string) (*Domain, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	created, err := c.client.Domains.CreateWithContext(ctx, &resend.CreateDomainRequest{
		Name:   name,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("domains.Create failed: %w", err)
	}

	records, err := json.Marshal(created.Records)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal records failed: %w", err)
	}

	return &Domain{
		ID:        created.Id,
		Name:      created.Name,
		Status:    created.Status,
		Region:    created.Region,
		CreatedAt: created.CreatedAt,
		Records:   records,
	}, nil
}

func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Domains.ListWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("domains.List failed: %w", err)
	}

	domains := make([]Domain, 0, len(resp.Data))
	for _, d := range resp.Data {
		domains = append(domains, Domain{
			ID:        d.Id,
			Name:      d.Name,
			Status:    d.Status,
			Region:    d.Region,
			CreatedAt: d.CreatedAt,
		})
	}

	return domains, nil
}

func (c *Client) GetDomain(ctx context.Context, domainID string) (*Domain, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	d, err := c.client.Domains.GetWithContext(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("domains.Get failed: %w", err)
	}

	records, err := json.Marshal(d.Records)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal records failed: %w", err)
	}

	return &Domain{
		ID:        d.Id,
		Name:      d.Name,
		Status:    d.Status,
		Region:    d.Region,
		CreatedAt: d.CreatedAt,
		Records:   records,
	}, nil
}

func (c *Client) UpdateDomain(ctx context.Context, p UpdateDomainParams) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Domains.UpdateWithContext(ctx, p.ID, buildUpdateDomainRequest(p)); err != nil {
		return fmt.Errorf("domains.Update failed: %w", err)
	}

	return nil
}

func buildUpdateDomainRequest(p UpdateDomainParams) *resend.UpdateDomainRequest {
	params := &resend.UpdateDomainRequest{
		OpenTracking:  p.OpenTracking,
		ClickTracking: p.ClickTracking,
	}
	if p.TLS != "" {
		params.Tls = resend.TlsOption(p.TLS)
	}

	return params
}

func (c *Client) DeleteDomain(ctx context.Context, domainID string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Domains.RemoveWithContext(ctx, domainID); err != nil {
		return fmt.Errorf("domains.Remove failed: %w", err)
	}

	return nil
}

func (c *Client) VerifyDomain(ctx context.Context, domainID string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Domains.VerifyWithContext(ctx, domainID); err != nil {
		return fmt.Errorf("domains.Verify failed: %w", err)
	}

	return nil
}
