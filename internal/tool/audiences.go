package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/rsvc"
)

// CreateAudienceRequest contains the fields of a new audience.
type CreateAudienceRequest struct {
	Name string `json:"name" jsonschema:"name of the audience"`
}

// GetAudienceRequest identifies the audience to retrieve.
type GetAudienceRequest struct {
	AudienceID string `json:"audienceId" jsonschema:"the audience ID"`
}

// DeleteAudienceRequest identifies the audience to delete.
type DeleteAudienceRequest struct {
	AudienceID string `json:"audienceId" jsonschema:"the audience ID"`
}

type audiencesSvc interface {
	CreateAudience(ctx context.Context, name string) (string, error)
	ListAudiences(ctx context.Context) ([]rsvc.Audience, error)
	GetAudience(ctx context.Context, audienceID string) (*rsvc.Audience, error)
	DeleteAudience(ctx context.Context, audienceID string) error
}

// NewAudiences creates the audience management tools.
func NewAudiences(svc audiencesSvc) *Audiences {
	return &Audiences{svc: svc}
}

type Audiences struct {
	svc audiencesSvc
}

func (t *Audiences) Create(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateAudienceRequest,
) (*mcp.CallToolResult, any, error) {
	id, err := t.svc.CreateAudience(ctx, input.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateAudience failed: %w", err)
	}

	return textResult(fmt.Sprintf("Audience created successfully! ID: %s", id)), nil, nil
}

func (t *Audiences) List(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	audiences, err := t.svc.ListAudiences(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.ListAudiences failed: %w", err)
	}

	result, err := jsonResult(audiences)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Audiences) Get(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetAudienceRequest,
) (*mcp.CallToolResult, any, error) {
	audience, err := t.svc.GetAudience(ctx, input.AudienceID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetAudience failed: %w", err)
	}

	result, err := jsonResult(audience)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Audiences) Delete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteAudienceRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.DeleteAudience(ctx, input.AudienceID); err != nil {
		return nil, nil, fmt.Errorf("svc.DeleteAudience failed: %w", err)
	}

	return textResult(fmt.Sprintf("Audience deleted successfully! ID: %s", input.AudienceID)), nil, nil
}
