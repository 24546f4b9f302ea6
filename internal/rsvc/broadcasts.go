package rsvc

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Broadcast mirrors the fields of a broadcast campaign.
type Broadcast struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	AudienceID  string `json:"audience_id,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	SentAt      string `json:"sent_at,omitempty"`
}

// CreateBroadcastParams carries the normalized fields of a new broadcast.
type CreateBroadcastParams struct {
	AudienceID string
	From       string
	ReplyTo    []string
	Subject    string
	Name       string
	Text       string
	HTML       string
}

func (c *Client) CreateBroadcast(ctx context.Context, p CreateBroadcastParams) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Broadcasts.CreateWithContext(ctx, buildBroadcastRequest(p))
	if err != nil {
		return "", fmt.Errorf("broadcasts.Create failed: %w", err)
	}

	return resp.Id, nil
}

func (c *Client) ListBroadcasts(ctx context.Context) ([]Broadcast, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Broadcasts.ListWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("broadcasts.List failed: %w", err)
	}

	broadcasts := make([]Broadcast, 0, len(resp.Data))
	for _, b := range resp.Data {
		broadcasts = append(broadcasts, Broadcast{
			ID:          b.Id,
			Name:        b.Name,
			AudienceID:  b.AudienceId,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
			ScheduledAt: b.ScheduledAt,
			SentAt:      b.SentAt,
		})
	}

	return broadcasts, nil
}

func (c *Client) GetBroadcast(ctx context.Context, broadcastID string) (*Broadcast, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	b, err := c.client.Broadcasts.GetWithContext(ctx, broadcastID)
	if err != nil {
		return nil, fmt.Errorf("broadcasts.Get failed: %w", err)
	}

	return &Broadcast{
		ID:          b.Id,
		Name:        b.Name,
		AudienceID:  b.AudienceId,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		ScheduledAt: b.ScheduledAt,
		SentAt:      b.SentAt,
	}, nil
}

// SendBroadcast schedules delivery of an existing broadcast. scheduledAt is
// passed through opaque; the API interprets its grammar.
func (c *Client) SendBroadcast(ctx context.Context, broadcastID, scheduledAt string) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Broadcasts.SendWithContext(ctx, &resend.SendBroadcastRequest{
		BroadcastId: broadcastID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		return "", fmt.Errorf("broadcasts.Send failed: %w", err)
	}

	return resp.Id, nil
}

// The broadcast API takes reply-to as a list, unlike the send API's single
// comma-joined string.
func buildBroadcastRequest(p CreateBroadcastParams) *resend.CreateBroadcastRequest {
	return &resend.CreateBroadcastRequest{
		AudienceId: p.AudienceID,
		From:       p.From,
		ReplyTo:    p.ReplyTo,
		Subject:    p.Subject,
		Name:       p.Name,
		Text:       p.Text,
		Html:       p.HTML,
	}
}

func (c *Client) DeleteBroadcast(ctx context.Context, broadcastID string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Broadcasts.RemoveWithContext(ctx, broadcastID); err != nil {
		return fmt.Errorf("broadcasts.Remove failed: %w", err)
	}

	return nil
}
