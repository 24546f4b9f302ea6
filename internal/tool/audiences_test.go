package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
)

func TestCreateAudience(t *testing.T) {
	svc := &resendSvcMock{
		CreateAudienceFunc: func(_ context.Context, name string) (string, error) {
			require.Equal(t, "Newsletter", name)
			return "aud-001", nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "create-audience", map[string]any{"name": "Newsletter"})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, "Audience created successfully! ID: aud-001")
}

func TestListAudiences(t *testing.T) {
	svc := &resendSvcMock{
		ListAudiencesFunc: func(_ context.Context) ([]rsvc.Audience, error) {
			return []rsvc.Audience{
				{ID: "aud-001", Name: "Newsletter"},
				{ID: "aud-002", Name: "Beta testers"},
			}, nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "list-audiences", map[string]any{})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, "Newsletter")
	assert.Contains(t, text, "Beta testers")
}

func TestGetAudience(t *testing.T) {
	svc := &resendSvcMock{
		GetAudienceFunc: func(_ context.Context, audienceID string) (*rsvc.Audience, error) {
			return &rsvc.Audience{ID: audienceID, Name: "Newsletter", CreatedAt: "2026-01-01T00:00:00Z"}, nil
		},
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "get-audience", map[string]any{"audienceId": "aud-001"})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, `"id": "aud-001"`)
	assert.Contains(t, text, `"name": "Newsletter"`)
}

func TestDeleteAudience(t *testing.T) {
	svc := &resendSvcMock{
		DeleteAudienceFunc: func(_ context.Context, _ string) error { return nil },
	}
	session := newSession(t, svc, &config.Defaults{APIKey: "re_test"})

	text, isError := callTool(t, session, "delete-audience", map[string]any{"audienceId": "aud-001"})

	require.False(t, isError, "unexpected tool failure: %s", text)
	assert.Contains(t, text, "Audience deleted successfully! ID: aud-001")
}
