package tool

import (
	"github.com/google/jsonschema-go/jsonschema"

	"resend-mcp/internal/config"
)

// The schemas below depend on the process-wide defaults: "from" is only
// required when no default sender is configured, and "replyTo" is only
// exposed when no default reply-to addresses are configured (a configured
// list always wins and cannot be overridden per call). They are built once
// at startup and handed to the tool registry.

func addressListSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: desc,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

func tagsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "optional tags, name/value pairs of ASCII strings up to 256 characters",
		Items: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name":  {Type: "string"},
				"value": {Type: "string"},
			},
			Required: []string{"name", "value"},
		},
	}
}

func emailArgsSchema(d *config.Defaults) *jsonschema.Schema {
	props := map[string]*jsonschema.Schema{
		"from":        {Type: "string", Description: "sender address"},
		"to":          addressListSchema("recipient address or list of addresses"),
		"cc":          addressListSchema("optional CC address or list of addresses"),
		"bcc":         addressListSchema("optional BCC address or list of addresses"),
		"subject":     {Type: "string", Description: "email subject"},
		"text":        {Type: "string", Description: "plain text body"},
		"html":        {Type: "string", Description: "HTML body"},
		"scheduledAt": {Type: "string", Description: "optional delivery time, natural language or ISO 8601"},
		"tags":        tagsSchema(),
	}

	required := []string{"to", "subject"}
	if d.Sender == "" {
		required = append(required, "from")
	}
	if len(d.ReplyTo) == 0 {
		props["replyTo"] = addressListSchema("optional reply-to address or list of addresses")
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func batchArgsSchema(d *config.Defaults) *jsonschema.Schema {
	minEmails, maxEmails := 1, maxBatchSize
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"emails": {
				Type:        "array",
				Description: "between 1 and 100 emails to send in one call",
				Items:       emailArgsSchema(d),
				MinItems:    &minEmails,
				MaxItems:    &maxEmails,
			},
		},
		Required: []string{"emails"},
	}
}

func createBroadcastSchema(d *config.Defaults) *jsonschema.Schema {
	props := map[string]*jsonschema.Schema{
		"audienceId": {Type: "string", Description: "audience to address the broadcast to"},
		"from":       {Type: "string", Description: "sender address"},
		"subject":    {Type: "string", Description: "broadcast subject"},
		"name":       {Type: "string", Description: "optional internal name"},
		"text":       {Type: "string", Description: "plain text body"},
		"html":       {Type: "string", Description: "HTML body"},
	}

	required := []string{"audienceId", "subject"}
	if d.Sender == "" {
		required = append(required, "from")
	}
	if len(d.ReplyTo) == 0 {
		props["replyTo"] = addressListSchema("optional reply-to address or list of addresses")
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}
