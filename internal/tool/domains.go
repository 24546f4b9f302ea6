package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/rsvc"
)

// CreateDomainRequest contains the fields of a new sending domain.
type CreateDomainRequest struct {
	Name   string `json:"name" jsonschema:"the domain name, e.g. notifications.example.com"`
	Region string `json:"region,omitempty" jsonschema:"optional delivery region: us-east-1, eu-west-1, sa-east-1 or ap-northeast-1"`
}

// GetDomainRequest identifies the domain to retrieve.
type GetDomainRequest struct {
	DomainID string `json:"domainId" jsonschema:"the domain ID"`
}

// UpdateDomainRequest contains the mutable tracking settings of a domain.
type UpdateDomainRequest struct {
	DomainID      string `json:"domainId" jsonschema:"the domain ID"`
	OpenTracking  bool   `json:"openTracking,omitempty" jsonschema:"track email opens"`
	ClickTracking bool   `json:"clickTracking,omitempty" jsonschema:"track link clicks"`
	TLS           string `json:"tls,omitempty" jsonschema:"TLS policy: enforced or opportunistic"`
}

// DeleteDomainRequest identifies the domain to delete.
type DeleteDomainRequest struct {
	DomainID string `json:"domainId" jsonschema:"the domain ID"`
}

// VerifyDomainRequest identifies the domain to verify.
type VerifyDomainRequest struct {
	DomainID string `json:"domainId" jsonschema:"the domain ID"`
}

type domainsSvc interface {
	CreateDomain(ctx context.Context, name, region string) (*rsvc.Domain, error)
	ListDomains(ctx context.Context) ([]rsvc.Domain, error)
	GetDomain(ctx context.Context, domainID string) (*rsvc.Domain, error)
	UpdateDomain(ctx context.Context, p rsvc.UpdateDomainParams) error
	DeleteDomain(ctx context.Context, domainID string) error
	VerifyDomain(ctx context.Context, domainID string) error
}

// NewDomains creates the domain management tools.
func NewDomains(svc domainsSvc) *Domains {
	return &Domains{svc: svc}
}

type Domains struct {
	svc domainsSvc
}

func (t *Domains) Create(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDomainRequest,
) (*mcp.CallToolResult, any, error) {
	domain, err := t.svc.CreateDomain(ctx, input.Name, input.Region)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateDomain failed: %w", err)
	}

	return textResult(fmt.Sprintf("Domain created successfully! ID: %s", domain.ID)), nil, nil
}

func (t *Domains) List(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	domains, err := t.svc.ListDomains(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.ListDomains failed: %w", err)
	}

	result, err := jsonResult(domains)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Domains) Get(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDomainRequest,
) (*mcp.CallToolResult, any, error) {
	domain, err := t.svc.GetDomain(ctx, input.DomainID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetDomain failed: %w", err)
	}

	result, err := jsonResult(domain)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Domains) Update(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateDomainRequest,
) (*mcp.CallToolResult, any, error) {
	if input.TLS != "" && input.TLS != "enforced" && input.TLS != "opportunistic" {
		return nil, nil, fmt.Errorf("tls must be %q or %q, got %q", "enforced", "opportunistic", input.TLS)
	}

	err := t.svc.UpdateDomain(ctx, rsvc.UpdateDomainParams{
		ID:            input.DomainID,
		OpenTracking:  input.OpenTracking,
		ClickTracking: input.ClickTracking,
		TLS:           input.TLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.UpdateDomain failed: %w", err)
	}

	return textResult(fmt.Sprintf("Domain updated successfully! ID: %s", input.DomainID)), nil, nil
}

func (t *Domains) Delete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDomainRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.DeleteDomain(ctx, input.DomainID); err != nil {
		return nil, nil, fmt.Errorf("svc.DeleteDomain failed: %w", err)
	}

	return textResult(fmt.Sprintf("Domain deleted successfully! ID: %s", input.DomainID)), nil, nil
}

func (t *Domains) Verify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VerifyDomainRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.VerifyDomain(ctx, input.DomainID); err != nil {
		return nil, nil, fmt.Errorf("svc.VerifyDomain failed: %w", err)
	}

	return textResult(fmt.Sprintf("Domain verification initiated! ID: %s", input.DomainID)), nil, nil
}
