package rsvc

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Contact mirrors the fields of an audience contact.
type Contact struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Unsubscribed bool   `json:"unsubscribed"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CreateContactParams carries the fields of a new contact.
type CreateContactParams struct {
	AudienceID   string
	Email        string
	FirstName    string
	LastName     string
	Unsubscribed bool
}

// UpdateContactParams identifies a contact by ID or email and carries the
// fields to change. Nil Unsubscribed leaves the subscription state untouched.
type UpdateContactParams struct {
	AudienceID   string
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Unsubscribed *bool
}

func (c *Client) CreateContact(ctx context.Context, p CreateContactParams) (string, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Contacts.CreateWithContext(ctx, &resend.CreateContactRequest{
		AudienceId:   p.AudienceID,
		Email:        p.Email,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Unsubscribed: p.Unsubscribed,
	})
	if err != nil {
		return "", fmt.Errorf("contacts.Create failed: %w", err)
	}

	return resp.Id, nil
}

func (c *Client) ListContacts(ctx context.Context, audienceID string) ([]Contact, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	resp, err := c.client.Contacts.ListWithContext(ctx, audienceID)
	if err != nil {
		return nil, fmt.Errorf("contacts.List failed: %w", err)
	}

	contacts := make([]Contact, 0, len(resp.Data))
	for _, ct := range resp.Data {
		contacts = append(contacts, contactFromAPI(ct))
	}

	return contacts, nil
}

// GetContact accepts either a contact ID or an email address as key.
func (c *Client) GetContact(ctx context.Context, audienceID, key string) (*Contact, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	ct, err := c.client.Contacts.GetWithContext(ctx, audienceID, key)
	if err != nil {
		return nil, fmt.Errorf("contacts.Get failed: %w", err)
	}

	contact := contactFromAPI(ct)

	return &contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, p UpdateContactParams) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	params := &resend.UpdateContactRequest{
		AudienceId: p.AudienceID,
		Id:         p.ID,
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
	}
	if p.Unsubscribed != nil {
		params.Unsubscribed = *p.Unsubscribed
	}

	if _, err := c.client.Contacts.UpdateWithContext(ctx, params); err != nil {
		return fmt.Errorf("contacts.Update failed: %w", err)
	}

	return nil
}

// DeleteContact accepts either a contact ID or an email address as key.
func (c *Client) DeleteContact(ctx context.Context, audienceID, key string) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	if _, err := c.client.Contacts.RemoveWithContext(ctx, audienceID, key); err != nil {
		return fmt.Errorf("contacts.Remove failed: %w", err)
	}

	return nil
}

func contactFromAPI(ct resend.Contact) Contact {
	return Contact{
		ID:           ct.Id,
		Email:        ct.Email,
		FirstName:    ct.FirstName,
		LastName:     ct.LastName,
		Unsubscribed: ct.Unsubscribed,
		CreatedAt:    ct.CreatedAt,
	}
}
