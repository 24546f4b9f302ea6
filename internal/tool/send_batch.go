package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
)

// maxBatchSize is the Resend batch API's per-call ceiling.
const maxBatchSize = 100

// SendBatchRequest contains the emails to send in one batch call.
type SendBatchRequest struct {
	Emails []EmailArgs `json:"emails"`
}

type sendBatchSvc interface {
	SendBatch(ctx context.Context, ps []rsvc.SendEmailParams) ([]string, error)
}

// NewSendBatch creates the send-batch-emails tool.
func NewSendBatch(svc sendBatchSvc, defaults *config.Defaults) *SendBatch {
	return &SendBatch{svc: svc, defaults: defaults}
}

type SendBatch struct {
	svc      sendBatchSvc
	defaults *config.Defaults
}

func (t *SendBatch) SendBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendBatchRequest,
) (*mcp.CallToolResult, any, error) {
	if len(input.Emails) == 0 {
		return nil, nil, fmt.Errorf("%w: emails must contain at least one entry", ErrMissingRequiredField)
	}
	if len(input.Emails) > maxBatchSize {
		return nil, nil, fmt.Errorf("%w: batch contains %d emails, the maximum is %d",
			ErrTooManyRecipients, len(input.Emails), maxBatchSize)
	}

	ps := make([]rsvc.SendEmailParams, 0, len(input.Emails))
	for i, args := range input.Emails {
		p, err := normalizeEmail(t.defaults, args)
		if err != nil {
			return nil, nil, fmt.Errorf("email %d: %w", i+1, err)
		}
		ps = append(ps, p)
	}

	ids, err := t.svc.SendBatch(ctx, ps)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.SendBatch failed: %w", err)
	}

	return textResult(fmt.Sprintf("Batch emails sent successfully! IDs: %s", strings.Join(ids, ", "))), nil, nil
}
