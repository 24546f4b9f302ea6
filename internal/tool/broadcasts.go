package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
)

// CreateBroadcastRequest contains the fields of a new broadcast.
type CreateBroadcastRequest struct {
	AudienceID string      `json:"audienceId"`
	From       string      `json:"from,omitempty"`
	ReplyTo    AddressList `json:"replyTo,omitempty"`
	Subject    string      `json:"subject"`
	Name       string      `json:"name,omitempty"`
	Text       string      `json:"text,omitempty"`
	HTML       string      `json:"html,omitempty"`
}

// GetBroadcastRequest identifies the broadcast to retrieve.
type GetBroadcastRequest struct {
	BroadcastID string `json:"broadcastId" jsonschema:"the broadcast ID"`
}

// SendBroadcastRequest triggers delivery of an existing broadcast, now or at
// the optional scheduled time.
type SendBroadcastRequest struct {
	BroadcastID string `json:"broadcastId" jsonschema:"the broadcast ID"`
	ScheduledAt string `json:"scheduledAt,omitempty" jsonschema:"optional delivery time, natural language or ISO 8601"`
}

// DeleteBroadcastRequest identifies the broadcast to delete.
type DeleteBroadcastRequest struct {
	BroadcastID string `json:"broadcastId" jsonschema:"the broadcast ID"`
}

type broadcastsSvc interface {
	CreateBroadcast(ctx context.Context, p rsvc.CreateBroadcastParams) (string, error)
	ListBroadcasts(ctx context.Context) ([]rsvc.Broadcast, error)
	GetBroadcast(ctx context.Context, broadcastID string) (*rsvc.Broadcast, error)
	SendBroadcast(ctx context.Context, broadcastID, scheduledAt string) (string, error)
	DeleteBroadcast(ctx context.Context, broadcastID string) error
}

// NewBroadcasts creates the broadcast management tools.
func NewBroadcasts(svc broadcastsSvc, defaults *config.Defaults) *Broadcasts {
	return &Broadcasts{svc: svc, defaults: defaults}
}

type Broadcasts struct {
	svc      broadcastsSvc
	defaults *config.Defaults
}

func (t *Broadcasts) Create(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateBroadcastRequest,
) (*mcp.CallToolResult, any, error) {
	if input.AudienceID == "" {
		return nil, nil, fmt.Errorf("%w: audienceId", ErrMissingRequiredField)
	}
	if input.Subject == "" {
		return nil, nil, fmt.Errorf("%w: subject", ErrMissingRequiredField)
	}

	from := input.From
	if from == "" {
		from = t.defaults.Sender
	}
	if from == "" {
		return nil, nil, fmt.Errorf("%w: from", ErrMissingRequiredField)
	}
	if err := validateAddress("from", from); err != nil {
		return nil, nil, err
	}

	if input.Text == "" && input.HTML == "" {
		return nil, nil, fmt.Errorf("%w: either text or html must be provided", ErrMissingContent)
	}

	replyTo, err := resolveReplyTo(t.defaults, input.ReplyTo)
	if err != nil {
		return nil, nil, err
	}

	id, err := t.svc.CreateBroadcast(ctx, rsvc.CreateBroadcastParams{
		AudienceID: input.AudienceID,
		From:       from,
		ReplyTo:    replyTo,
		Subject:    input.Subject,
		Name:       input.Name,
		Text:       input.Text,
		HTML:       input.HTML,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateBroadcast failed: %w", err)
	}

	return textResult(fmt.Sprintf("Broadcast created successfully! ID: %s", id)), nil, nil
}

func (t *Broadcasts) List(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	broadcasts, err := t.svc.ListBroadcasts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.ListBroadcasts failed: %w", err)
	}

	result, err := jsonResult(broadcasts)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Broadcasts) Get(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetBroadcastRequest,
) (*mcp.CallToolResult, any, error) {
	broadcast, err := t.svc.GetBroadcast(ctx, input.BroadcastID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetBroadcast failed: %w", err)
	}

	result, err := jsonResult(broadcast)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Broadcasts) Send(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendBroadcastRequest,
) (*mcp.CallToolResult, any, error) {
	id, err := t.svc.SendBroadcast(ctx, input.BroadcastID, input.ScheduledAt)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.SendBroadcast failed: %w", err)
	}

	return textResult(fmt.Sprintf("Broadcast sent successfully! ID: %s", id)), nil, nil
}

func (t *Broadcasts) Delete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteBroadcastRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.DeleteBroadcast(ctx, input.BroadcastID); err != nil {
		return nil, nil, fmt.Errorf("svc.DeleteBroadcast failed: %w", err)
	}

	return textResult(fmt.Sprintf("Broadcast deleted successfully! ID: %s", input.BroadcastID)), nil, nil
}
