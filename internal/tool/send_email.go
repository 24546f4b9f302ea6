package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
)

// EmailArgs carries the invocation-facing fields of one outgoing email,
// shared by send-email and the entries of send-batch-emails.
type EmailArgs struct {
	From        string      `json:"from,omitempty"`
	To          AddressList `json:"to"`
	Cc          AddressList `json:"cc,omitempty"`
	Bcc         AddressList `json:"bcc,omitempty"`
	ReplyTo     AddressList `json:"replyTo,omitempty"`
	Subject     string      `json:"subject"`
	Text        string      `json:"text,omitempty"`
	HTML        string      `json:"html,omitempty"`
	ScheduledAt string      `json:"scheduledAt,omitempty"`
	Tags        []Tag       `json:"tags,omitempty"`
}

type sendEmailSvc interface {
	SendEmail(ctx context.Context, p rsvc.SendEmailParams) (string, error)
}

// NewSendEmail creates the send-email tool.
func NewSendEmail(svc sendEmailSvc, defaults *config.Defaults) *SendEmail {
	return &SendEmail{svc: svc, defaults: defaults}
}

type SendEmail struct {
	svc      sendEmailSvc
	defaults *config.Defaults
}

func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EmailArgs,
) (*mcp.CallToolResult, any, error) {
	p, err := normalizeEmail(t.defaults, input)
	if err != nil {
		return nil, nil, err
	}

	id, err := t.svc.SendEmail(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.SendEmail failed: %w", err)
	}

	return textResult(fmt.Sprintf("Email sent successfully! ID: %s", id)), nil, nil
}

// normalizeEmail applies default resolution and the cross-field rules, then
// builds the provider request. Unset optional fields stay empty and are not
// forwarded upstream. scheduledAt passes through uninterpreted.
func normalizeEmail(d *config.Defaults, a EmailArgs) (rsvc.SendEmailParams, error) {
	if len(a.To) == 0 {
		return rsvc.SendEmailParams{}, fmt.Errorf("%w: to", ErrMissingRequiredField)
	}
	if a.Subject == "" {
		return rsvc.SendEmailParams{}, fmt.Errorf("%w: subject", ErrMissingRequiredField)
	}

	from := a.From
	if from == "" {
		from = d.Sender
	}
	if from == "" {
		return rsvc.SendEmailParams{}, fmt.Errorf("%w: from", ErrMissingRequiredField)
	}

	if a.Text == "" && a.HTML == "" {
		return rsvc.SendEmailParams{}, fmt.Errorf("%w: either text or html must be provided", ErrMissingContent)
	}

	if err := validateAddress("from", from); err != nil {
		return rsvc.SendEmailParams{}, err
	}
	if err := validateAddresses("to", a.To); err != nil {
		return rsvc.SendEmailParams{}, err
	}
	if err := validateAddresses("cc", a.Cc); err != nil {
		return rsvc.SendEmailParams{}, err
	}
	if err := validateAddresses("bcc", a.Bcc); err != nil {
		return rsvc.SendEmailParams{}, err
	}

	replyTo, err := resolveReplyTo(d, a.ReplyTo)
	if err != nil {
		return rsvc.SendEmailParams{}, err
	}

	if err := validateTags(a.Tags); err != nil {
		return rsvc.SendEmailParams{}, err
	}

	return rsvc.SendEmailParams{
		From:        from,
		To:          a.To,
		Cc:          a.Cc,
		Bcc:         a.Bcc,
		ReplyTo:     replyTo,
		Subject:     a.Subject,
		Text:        a.Text,
		HTML:        a.HTML,
		ScheduledAt: a.ScheduledAt,
		Tags:        normalizeTags(a.Tags),
	}, nil
}

// resolveReplyTo: a non-empty configured list always wins, even over an
// explicit invocation value. The schema hides the field in that case, so an
// invocation value can only arrive when no defaults are configured.
func resolveReplyTo(d *config.Defaults, invocation AddressList) ([]string, error) {
	if len(d.ReplyTo) > 0 {
		return d.ReplyTo, nil
	}
	if len(invocation) == 0 {
		return nil, nil
	}
	if err := validateAddresses("replyTo", invocation); err != nil {
		return nil, err
	}

	return invocation, nil
}

func normalizeTags(tags []Tag) []rsvc.Tag {
	if len(tags) == 0 {
		return nil
	}

	out := make([]rsvc.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, rsvc.Tag{Name: t.Name, Value: t.Value})
	}

	return out
}
