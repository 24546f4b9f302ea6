package rsvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Tag is a name/value pair attached to an outgoing email.
type Tag struct {
	Name  string
	Value string
}

// SendEmailParams carries the normalized fields of a single outgoing email.
// Empty fields are not forwarded to the API.
type SendEmailParams struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	ReplyTo     []string
	Subject     string
	Text        string
	HTML        string
	ScheduledAt string
	Tags        []Tag
}

// Email mirrors the fields of a retrieved email.
type Email struct {
	ID        string   `json:"id"`
	From      string   `json:"from"`
	To        []string `json:"to,omitempty"`
	Cc        []string `json:"cc,omitempty"`
	Bcc       []string `json:"bcc,omitempty"`
	ReplyTo   []string `json:"reply_to,omitempty"`
	Subject   string   `json:"subject"`
	Text      string   `json:"text,omitempty"`
	HTML      string   `json:"html,omitempty"`
	LastEvent string   `json:"last_event,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

func (c *Client) SendEmail(ctx context.Context, p SendEmailParams) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	sent, err := c.client.Emails.SendWithContext(ctx, buildSendRequest(p))
	if err != nil {
		return "", fmt.Errorf("emails.Send failed: %w", err)
	}

	return sent.Id, nil
}

func (c *Client) SendBatch(ctx context.Context, ps []SendEmailParams) ([]string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	reqs := make([]*resend.SendEmailRequest, 0, len(ps))
	for _, p := range ps {
		reqs = append(reqs, buildSendRequest(p))
	}

	resp, err := c.client.Batch.SendWithContext(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("batch.Send failed: %w", err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, item := range resp.Data {
		ids = append(ids, item.Id)
	}

	return ids, nil
}

func (c *Client) GetEmail(ctx context.Context, emailID string) (*Email, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	e, err := c.client.Emails.GetWithContext(ctx, emailID)
	if err != nil {
		return nil, fmt.Errorf("emails.Get failed: %w", err)
	}

	return emailFromAPI(e), nil
}

func emailFromAPI(e *resend.Email) *Email {
	return &Email{
		ID:        e.Id,
		From:      e.From,
		To:        e.To,
		Cc:        e.Cc,
		Bcc:       e.Bcc,
		ReplyTo:   e.ReplyTo,
		Subject:   e.Subject,
		Text:      e.Text,
		HTML:      e.Html,
		LastEvent: e.LastEvent,
		CreatedAt: e.CreatedAt,
	}
}

func (c *Client) UpdateEmail(ctx context.Context, emailID, scheduledAt string) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	updated, err := c.client.Emails.UpdateWithContext(ctx, &resend.UpdateEmailRequest{
		Id:          emailID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		return "", fmt.Errorf("emails.Update failed: %w", err)
	}

	return updated.Id, nil
}

func (c *Client) CancelEmail(ctx context.Context, emailID string) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	canceled, err := c.client.Emails.CancelWithContext(ctx, emailID)
	if err != nil {
		return "", fmt.Errorf("emails.Cancel failed: %w", err)
	}

	return canceled.Id, nil
}

func buildSendRequest(p SendEmailParams) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:        p.From,
		To:          p.To,
		Cc:          p.Cc,
		Bcc:         p.Bcc,
		Subject:     p.Subject,
		Text:        p.Text,
		Html:        p.HTML,
		ScheduledAt: p.ScheduledAt,
	}

	if len(p.ReplyTo) > 0 {
		req.ReplyTo = strings.Join(p.ReplyTo, ", ")
	}

	for _, t := range p.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: t.Name, Value: t.Value})
	}

	return req
}
