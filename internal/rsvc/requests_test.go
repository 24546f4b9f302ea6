package rsvc

import (
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuildSendRequestJoinsReplyTo(t *testing.T) {
	req := buildSendRequest(SendEmailParams{
		From:    "s@x.com",
		To:      []string{"a@x.com"},
		ReplyTo: []string{"r1@x.com", "r2@x.com"},
		Subject: "Hi",
		Text:    "Body",
	})

	// the send API takes reply-to as a single comma-joined string
	assert.Equal(t, "r1@x.com, r2@x.com", req.ReplyTo)
	assert.Equal(t, []string{"a@x.com"}, req.To)
}

func TestBuildSendRequestOmitsUnsetFields(t *testing.T) {
	req := buildSendRequest(SendEmailParams{
		From:    "s@x.com",
		To:      []string{"a@x.com"},
		Subject: "Hi",
		Text:    "Body",
	})

	assert.Empty(t, req.ReplyTo)
	assert.Empty(t, req.Cc)
	assert.Empty(t, req.Bcc)
	assert.Empty(t, req.ScheduledAt)
	assert.Empty(t, req.Tags)
}

func TestBuildBroadcastRequestKeepsReplyToList(t *testing.T) {
	req := buildBroadcastRequest(CreateBroadcastParams{
		AudienceID: "aud-001",
		From:       "s@x.com",
		ReplyTo:    []string{"r1@x.com", "r2@x.com"},
		Subject:    "Spring update",
		HTML:       "<h1>News</h1>",
	})

	assert.Equal(t, []string{"r1@x.com", "r2@x.com"}, req.ReplyTo)
	assert.Equal(t, "aud-001", req.AudienceId)
}

func TestBuildUpdateDomainRequest(t *testing.T) {
	req := buildUpdateDomainRequest(UpdateDomainParams{
		ID:            "d-001",
		OpenTracking:  true,
		ClickTracking: true,
		TLS:           "enforced",
	})

	assert.True(t, req.OpenTracking)
	assert.True(t, req.ClickTracking)
	assert.Equal(t, resend.Enforced, req.Tls)

	req = buildUpdateDomainRequest(UpdateDomainParams{ID: "d-001"})
	assert.Empty(t, req.Tls)
}

func TestEmailFromAPI(t *testing.T) {
	got := emailFromAPI(&resend.Email{
		Id:        "em_1",
		From:      "s@x.com",
		To:        []string{"a@x.com"},
		ReplyTo:   []string{"r1@x.com", "r2@x.com"},
		Subject:   "Hi",
		Text:      "Body",
		LastEvent: "delivered",
	})

	assert.Equal(t, &Email{
		ID:        "em_1",
		From:      "s@x.com",
		To:        []string{"a@x.com"},
		ReplyTo:   []string{"r1@x.com", "r2@x.com"},
		Subject:   "Hi",
		Text:      "Body",
		LastEvent: "delivered",
	}, got)
}
