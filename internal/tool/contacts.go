package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/rsvc"
)

// CreateContactRequest contains the fields of a new contact.
type CreateContactRequest struct {
	AudienceID   string `json:"audienceId" jsonschema:"the audience ID"`
	Email        string `json:"email" jsonschema:"the contact's email address"`
	FirstName    string `json:"firstName,omitempty" jsonschema:"optional first name"`
	LastName     string `json:"lastName,omitempty" jsonschema:"optional last name"`
	Unsubscribed bool   `json:"unsubscribed,omitempty" jsonschema:"create the contact already unsubscribed"`
}

// ListContactsRequest identifies the audience whose contacts to list.
type ListContactsRequest struct {
	AudienceID string `json:"audienceId" jsonschema:"the audience ID"`
}

// GetContactRequest identifies a contact by ID or email address.
type GetContactRequest struct {
	AudienceID string `json:"audienceId" jsonschema:"the audience ID"`
	ContactID  string `json:"contactId,omitempty" jsonschema:"the contact ID"`
	Email      string `json:"email,omitempty" jsonschema:"the contact's email address, alternative to contactId"`
}

// UpdateContactRequest identifies a contact by ID or email address and
// carries the fields to change.
type UpdateContactRequest struct {
	AudienceID   string `json:"audienceId" jsonschema:"the audience ID"`
	ContactID    string `json:"contactId,omitempty" jsonschema:"the contact ID"`
	Email        string `json:"email,omitempty" jsonschema:"the contact's email address, alternative to contactId"`
	FirstName    string `json:"firstName,omitempty" jsonschema:"new first name"`
	LastName     string `json:"lastName,omitempty" jsonschema:"new last name"`
	Unsubscribed *bool  `json:"unsubscribed,omitempty" jsonschema:"new subscription state"`
}

// DeleteContactRequest identifies a contact by ID or email address.
type DeleteContactRequest struct {
	AudienceID string `json:"audienceId" jsonschema:"the audience ID"`
	ContactID  string `json:"contactId,omitempty" jsonschema:"the contact ID"`
	Email      string `json:"email,omitempty" jsonschema:"the contact's email address, alternative to contactId"`
}

type contactsSvc interface {
	CreateContact(ctx context.Context, p rsvc.CreateContactParams) (string, error)
	ListContacts(ctx context.Context, audienceID string) ([]rsvc.Contact, error)
	GetContact(ctx context.Context, audienceID, key string) (*rsvc.Contact, error)
	UpdateContact(ctx context.Context, p rsvc.UpdateContactParams) error
	DeleteContact(ctx context.Context, audienceID, key string) error
}

// NewContacts creates the contact management tools.
func NewContacts(svc contactsSvc) *Contacts {
	return &Contacts{svc: svc}
}

type Contacts struct {
	svc contactsSvc
}

func (t *Contacts) Create(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateContactRequest,
) (*mcp.CallToolResult, any, error) {
	if err := validateAddress("email", input.Email); err != nil {
		return nil, nil, err
	}

	id, err := t.svc.CreateContact(ctx, rsvc.CreateContactParams{
		AudienceID:   input.AudienceID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Unsubscribed: input.Unsubscribed,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.CreateContact failed: %w", err)
	}

	return textResult(fmt.Sprintf("Contact created successfully! ID: %s", id)), nil, nil
}

func (t *Contacts) List(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListContactsRequest,
) (*mcp.CallToolResult, any, error) {
	contacts, err := t.svc.ListContacts(ctx, input.AudienceID)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.ListContacts failed: %w", err)
	}

	result, err := jsonResult(contacts)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Contacts) Get(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetContactRequest,
) (*mcp.CallToolResult, any, error) {
	key, err := contactKey(input.ContactID, input.Email)
	if err != nil {
		return nil, nil, err
	}

	contact, err := t.svc.GetContact(ctx, input.AudienceID, key)
	if err != nil {
		return nil, nil, fmt.Errorf("svc.GetContact failed: %w", err)
	}

	result, err := jsonResult(contact)
	if err != nil {
		return nil, nil, err
	}

	return result, nil, nil
}

func (t *Contacts) Update(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateContactRequest,
) (*mcp.CallToolResult, any, error) {
	key, err := contactKey(input.ContactID, input.Email)
	if err != nil {
		return nil, nil, err
	}

	err = t.svc.UpdateContact(ctx, rsvc.UpdateContactParams{
		AudienceID:   input.AudienceID,
		ID:           input.ContactID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Unsubscribed: input.Unsubscribed,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("svc.UpdateContact failed: %w", err)
	}

	return textResult(fmt.Sprintf("Contact updated successfully! ID: %s", key)), nil, nil
}

func (t *Contacts) Delete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteContactRequest,
) (*mcp.CallToolResult, any, error) {
	key, err := contactKey(input.ContactID, input.Email)
	if err != nil {
		return nil, nil, err
	}

	if err := t.svc.DeleteContact(ctx, input.AudienceID, key); err != nil {
		return nil, nil, fmt.Errorf("svc.DeleteContact failed: %w", err)
	}

	return textResult(fmt.Sprintf("Contact deleted successfully! ID: %s", key)), nil, nil
}

// contactKey picks the ID when present, otherwise the email address.
func contactKey(contactID, email string) (string, error) {
	if contactID != "" {
		return contactID, nil
	}
	if email == "" {
		return "", fmt.Errorf("%w: either contactId or email must be provided", ErrMissingIdentifier)
	}
	if err := validateAddress("email", email); err != nil {
		return "", err
	}

	return email, nil
}
