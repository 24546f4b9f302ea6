package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/rsvc"
)

// CreateAPIKeyRequest contains the fields of a new API key.
type CreateAPIKeyRequest struct {
	Name       string `json:"name" jsonschema:"name of the API key"`
	Permission string `json:"permission,omitempty" jsonschema:"optional permission: full_access or sending_access"`
	DomainID   string `json:"domainId,omitempty" jsonschema:"restrict a sending_access key to this domain ID"`
}

// DeleteAPIKeyRequest identifies the API key to delete.
type DeleteAPIKeyRequest struct {
	APIKeyID string `json:"apiKeyId" jsonschema:"the API key ID"`
}

type apiKeysSvc interface {
	CreateAPIKey(ctx context.Context, p rsvc.CreateAPIKeyParams) (id, token string, err error)
	ListAPIKeys(ctx context.Context) ([]rsvc.APIKey, error)
	DeleteAPIKey(ctx context.Context, apiKeyID string) error
}

// NewAPIKeys creates the API key management tools.
func NewAPIKeys(svc apiKeysSvc) *APIKeys {
	return &APIKeys{svc: svc}
}

type APIKeys struct {
	svc apiKeysSvc
}

func (t *APIKeys) Create(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateAPIKeyRequest,
) (*mcp.CallToolResult, any, error) {
	if input.Permission != "" && input.Permission != "full_access" && input.Permission != "sending_access" {
		return nil, nil, fmt.Errorf("permission must be %q or %q, got %q", "full_access", "sending_access", input.Permission)
	}

	id, token, err := t.svc.CreateAPIKey(ctx, rsvc.CreateAPIKeyParams{
		Name:       input.Name,
		Permission: input.Permission,
		DomainID:   input.DomainID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateAPIKey failed: %w", err)
	}

	text := fmt.Sprintf(
		"API key created successfully! ID: %s\nToken: %s\nStore this token now, it cannot be retrieved again.",
		id, token,
	)

	return textResult(text), nil, nil
}

func (t *APIKeys) List(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	keys, err := t.svc.ListAPIKeys(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.ListAPIKeys failed: %w", err)
	}

	result, err := jsonResult(keys)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *APIKeys) Delete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteAPIKeyRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.DeleteAPIKey(ctx, input.APIKeyID); err != nil {
		return nil, nil, fmt.Errorf("svc.DeleteAPIKey failed: %w", err)
	}

	return textResult(fmt.Sprintf("API key deleted successfully! ID: %s", input.APIKeyID)), nil, nil
}
