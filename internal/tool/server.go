package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"resend-mcp/internal/config"
)

type resendSvc interface {
	sendEmailSvc
	sendBatchSvc
	emailsSvc
	domainsSvc
	apiKeysSvc
	audiencesSvc
	contactsSvc
	broadcastsSvc
}

// NewServer creates an MCP server exposing the Resend API as tools.
// The send-email, send-batch-emails and create-broadcast schemas are
// derived from defaults once, here, and never change afterwards.
func NewServer(svc resendSvc, defaults *config.Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "resend-mcp", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send-email",
		Description: "Send a transactional email via Resend",
		InputSchema: emailArgsSchema(defaults),
	}, NewSendEmail(svc, defaults).SendEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send-batch-emails",
		Description: "Send up to 100 emails in a single call",
		InputSchema: batchArgsSchema(defaults),
	}, NewSendBatch(svc, defaults).SendBatch)

	emails := NewEmails(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-email",
		Description: "Retrieve a sent email by ID",
	}, emails.Get)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update-email",
		Description: "Reschedule a scheduled email",
	}, emails.Update)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cancel-email",
		Description: "Cancel a scheduled email",
	}, emails.Cancel)

	domains := NewDomains(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create-domain",
		Description: "Register a sending domain",
	}, domains.Create)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-domains",
		Description: "List all sending domains",
	}, domains.List)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-domain",
		Description: "Retrieve a sending domain with its DNS records",
	}, domains.Get)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update-domain",
		Description: "Update a domain's tracking and TLS settings",
	}, domains.Update)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete-domain",
		Description: "Delete a sending domain",
	}, domains.Delete)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "verify-domain",
		Description: "Trigger DNS verification of a sending domain",
	}, domains.Verify)

	apiKeys := NewAPIKeys(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create-api-key",
		Description: "Create an API key; the secret token is only shown once",
	}, apiKeys.Create)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-api-keys",
		Description: "List all API keys",
	}, apiKeys.List)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete-api-key",
		Description: "Delete an API key",
	}, apiKeys.Delete)

	audiences := NewAudiences(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create-audience",
		Description: "Create a contact audience",
	}, audiences.Create)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-audiences",
		Description: "List all audiences",
	}, audiences.List)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-audience",
		Description: "Retrieve an audience by ID",
	}, audiences.Get)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete-audience",
		Description: "Delete an audience",
	}, audiences.Delete)

	contacts := NewContacts(svc)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create-contact",
		Description: "Add a contact to an audience",
	}, contacts.Create)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-contacts",
		Description: "List the contacts of an audience",
	}, contacts.List)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-contact",
		Description: "Retrieve a contact by ID or email address",
	}, contacts.Get)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update-contact",
		Description: "Update a contact identified by ID or email address",
	}, contacts.Update)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete-contact",
		Description: "Delete a contact identified by ID or email address",
	}, contacts.Delete)

	broadcasts := NewBroadcasts(svc, defaults)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create-broadcast",
		Description: "Create a broadcast for an audience",
		InputSchema: createBroadcastSchema(defaults),
	}, broadcasts.Create)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-broadcasts",
		Description: "List all broadcasts",
	}, broadcasts.List)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-broadcast",
		Description: "Retrieve a broadcast by ID",
	}, broadcasts.Get)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "send-broadcast",
		Description: "Send or schedule an existing broadcast",
	}, broadcasts.Send)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete-broadcast",
		Description: "Delete a broadcast",
	}, broadcasts.Delete)

	return server
}
