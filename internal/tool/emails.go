package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/rsvc"
)

// GetEmailRequest identifies the email to retrieve.
type GetEmailRequest struct {
	EmailID string `json:"emailId" jsonschema:"the email ID"`
}

// UpdateEmailRequest reschedules a previously scheduled email.
type UpdateEmailRequest struct {
	EmailID     string `json:"emailId" jsonschema:"the email ID"`
	ScheduledAt string `json:"scheduledAt" jsonschema:"new delivery time, natural language or ISO 8601"`
}

// CancelEmailRequest identifies the scheduled email to cancel.
type CancelEmailRequest struct {
	EmailID string `json:"emailId" jsonschema:"the email ID"`
}

type emailsSvc interface {
	GetEmail(ctx context.Context, emailID string) (*rsvc.Email, error)
	UpdateEmail(ctx context.Context, emailID, scheduledAt string) (string, error)
	CancelEmail(ctx context.Context, emailID string) (string, error)
}

// NewEmails creates the get/update/cancel-email tools.
func NewEmails(svc emailsSvc) *Emails {
	return &Emails{svc: svc}
}

type Emails struct {
	svc emailsSvc
}

func (t *Emails) Get(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailRequest,
) (*mcp.CallToolResult, any, error) {
	email, err := t.svc.GetEmail(ctx, input.EmailID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetEmail failed: %w", err)
	}

	result, err := jsonResult(email)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Emails) Update(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateEmailRequest,
) (*mcp.CallToolResult, any, error) {
	if input.ScheduledAt == "" {
		return nil, nil, fmt.Errorf("%w: scheduledAt", ErrMissingRequiredField)
	}

	id, err := t.svc.UpdateEmail(ctx, input.EmailID, input.ScheduledAt)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.UpdateEmail failed: %w", err)
	}

	return textResult(fmt.Sprintf("Email updated successfully! ID: %s", id)), nil, nil
}

func (t *Emails) Cancel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CancelEmailRequest,
) (*mcp.CallToolResult, any, error) {
	id, err := t.svc.CancelEmail(ctx, input.EmailID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CancelEmail failed: %w", err)
	}

	return textResult(fmt.Sprintf("Email canceled successfully! ID: %s", id)), nil, nil
}
