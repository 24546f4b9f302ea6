package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
)

func TestGetEmail(t *testing.T) {
	svc := &resendSvcMock{
		GetEmailFunc: func(_ context.Context, emailID string) (*rsvc.Email, error) {
			return &rsvc.Email{
				ID:        emailID,
				From:      "s@x.com",
				To:        []string{"a@x.com"},
				Subject:   "Hi",
				Text:      "Body",
				LastEvent: "delivered",
			}, nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "get-email", map[string]any{"emailId": "em_1"})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, `"id": "em_1"`)
	assert.Contains(t, text, `"subject": "Hi"`)
	assert.Contains(t, text, `"last_event": "delivered"`)
}

func TestUpdateEmail(t *testing.T) {
	var gotID, gotScheduledAt string
	svc := &resendSvcMock{
		UpdateEmailFunc: func(_ context.Context, emailID, scheduledAt string) (string, error) {
			gotID, gotScheduledAt = emailID, scheduledAt
			return emailID, nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "update-email", map[string]any{
		"emailId":     "em_1",
		"scheduledAt": "2026-09-01T10:00:00Z",
	})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, "Email updated successfully! ID: em_1")
	assert.Equal(t, "em_1", gotID)
	assert.Equal(t, "2026-09-01T10:00:00Z", gotScheduledAt)
}

func TestCancelEmail(t *testing.T) {
	svc := &resendSvcMock{
		CancelEmailFunc: func(_ context.Context, emailID string) (string, error) {
			return emailID, nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "cancel-email", map[string]any{"emailId": "em_9"})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, "Email canceled successfully! ID: em_9")
}
