package tool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"resend-mcp/internal/config"
	"resend-mcp/internal/rsvc"
	"resend-mcp/internal/tool"
)

var errNotStubbed = errors.New("not stubbed")

type resendSvcMock struct {
	SendEmailFunc func(ctx context.Context, p rsvc.SendEmailParams) (string, error)
	SendBatchFunc func(ctx context.Context, ps []rsvc.SendEmailParams) ([]string, error)

	GetEmailFunc    func(ctx context.Context, emailID string) (*rsvc.Email, error)
	UpdateEmailFunc func(ctx context.Context, emailID, scheduledAt string) (string, error)
	CancelEmailFunc func(ctx context.Context, emailID string) (string, error)

	CreateDomainFunc func(ctx context.Context, name, region string) (*rsvc.Domain, error)
	ListDomainsFunc  func(ctx context.Context) ([]rsvc.Domain, error)
	GetDomainFunc    func(ctx context.Context, domainID string) (*rsvc.Domain, error)
	UpdateDomainFunc func(ctx context.Context, p rsvc.UpdateDomainParams) error
	DeleteDomainFunc func(ctx context.Context, domainID string) error
	VerifyDomainFunc func(ctx context.Context, domainID string) error

	CreateAPIKeyFunc func(ctx context.Context, p rsvc.CreateAPIKeyParams) (string, string, error)
	ListAPIKeysFunc  func(ctx context.Context) ([]rsvc.APIKey, error)
	DeleteAPIKeyFunc func(ctx context.Context, apiKeyID string) error

	CreateAudienceFunc func(ctx context.Context, name string) (string, error)
	ListAudiencesFunc  func(ctx context.Context) ([]rsvc.Audience, error)
	GetAudienceFunc    func(ctx context.Context, audienceID string) (*rsvc.Audience, error)
	DeleteAudienceFunc func(ctx context.Context, audienceID string) error

	CreateContactFunc func(ctx context.Context, p rsvc.CreateContactParams) (string, error)
	ListContactsFunc  func(ctx context.Context, audienceID string) ([]rsvc.Contact, error)
	GetContactFunc    func(ctx context.Context, audienceID, key string) (*rsvc.Contact, error)
	UpdateContactFunc func(ctx context.Context, p rsvc.UpdateContactParams) error
	DeleteContactFunc func(ctx context.Context, audienceID, key string) error

	CreateBroadcastFunc func(ctx context.Context, p rsvc.CreateBroadcastParams) (string, error)
	ListBroadcastsFunc  func(ctx context.Context) ([]rsvc.Broadcast, error)
	GetBroadcastFunc    func(ctx context.Context, broadcastID string) (*rsvc.Broadcast, error)
	SendBroadcastFunc   func(ctx context.Context, broadcastID, scheduledAt string) (string, error)
	DeleteBroadcastFunc func(ctx context.Context, broadcastID string) error
}

func (m *resendSvcMock) SendEmail(ctx context.Context, p rsvc.SendEmailParams) (string, error) {
	if m.SendEmailFunc == nil {
		return "", errNotStubbed
	}
	return m.SendEmailFunc(ctx, p)
}

func (m *resendSvcMock) SendBatch(ctx context.Context, ps []rsvc.SendEmailParams) ([]string, error) {
	if m.SendBatchFunc == nil {
		return nil, errNotStubbed
	}
	return m.SendBatchFunc(ctx, ps)
}

func (m *resendSvcMock) GetEmail(ctx context.Context, emailID string) (*rsvc.Email, error) {
	if m.GetEmailFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetEmailFunc(ctx, emailID)
}

func (m *resendSvcMock) UpdateEmail(ctx context.Context, emailID, scheduledAt string) (string, error) {
	if m.UpdateEmailFunc == nil {
		return "", errNotStubbed
	}
	return m.UpdateEmailFunc(ctx, emailID, scheduledAt)
}

func (m *resendSvcMock) CancelEmail(ctx context.Context, emailID string) (string, error) {
	if m.CancelEmailFunc == nil {
		return "", errNotStubbed
	}
	return m.CancelEmailFunc(ctx, emailID)
}

func (m *resendSvcMock) CreateDomain(ctx context.Context, name, region string) (*rsvc.Domain, error) {
	if m.CreateDomainFunc == nil {
		return nil, errNotStubbed
	}
	return m.CreateDomainFunc(ctx, name, region)
}

func (m *resendSvcMock) ListDomains(ctx context.Context) ([]rsvc.Domain, error) {
	if m.ListDomainsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListDomainsFunc(ctx)
}

func (m *resendSvcMock) GetDomain(ctx context.Context, domainID string) (*rsvc.Domain, error) {
	if m.GetDomainFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetDomainFunc(ctx, domainID)
}

func (m *resendSvcMock) UpdateDomain(ctx context.Context, p rsvc.UpdateDomainParams) error {
	if m.UpdateDomainFunc == nil {
		return errNotStubbed
	}
	return m.UpdateDomainFunc(ctx, p)
}

func (m *resendSvcMock) DeleteDomain(ctx context.Context, domainID string) error {
	if m.DeleteDomainFunc == nil {
		return errNotStubbed
	}
	return m.DeleteDomainFunc(ctx, domainID)
}

func (m *resendSvcMock) VerifyDomain(ctx context.Context, domainID string) error {
	if m.VerifyDomainFunc == nil {
		return errNotStubbed
	}
	return m.VerifyDomainFunc(ctx, domainID)
}

func (m *resendSvcMock) CreateAPIKey(ctx context.Context, p rsvc.CreateAPIKeyParams) (string, string, error) {
	if m.CreateAPIKeyFunc == nil {
		return "", "", errNotStubbed
	}
	return m.CreateAPIKeyFunc(ctx, p)
}

func (m *resendSvcMock) ListAPIKeys(ctx context.Context) ([]rsvc.APIKey, error) {
	if m.ListAPIKeysFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListAPIKeysFunc(ctx)
}

func (m *resendSvcMock) DeleteAPIKey(ctx context.Context, apiKeyID string) error {
	if m.DeleteAPIKeyFunc == nil {
		return errNotStubbed
	}
	return m.DeleteAPIKeyFunc(ctx, apiKeyID)
}

func (m *resendSvcMock) CreateAudience(ctx context.Context, name string) (string, error) {
	if m.CreateAudienceFunc == nil {
		return "", errNotStubbed
	}
	return m.CreateAudienceFunc(ctx, name)
}

func (m *resendSvcMock) ListAudiences(ctx context.Context) ([]rsvc.Audience, error) {
	if m.ListAudiencesFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListAudiencesFunc(ctx)
}

func (m *resendSvcMock) GetAudience(ctx context.Context, audienceID string) (*rsvc.Audience, error) {
	if m.GetAudienceFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetAudienceFunc(ctx, audienceID)
}

func (m *resendSvcMock) DeleteAudience(ctx context.Context, audienceID string) error {
	if m.DeleteAudienceFunc == nil {
		return errNotStubbed
	}
	return m.DeleteAudienceFunc(ctx, audienceID)
}

func (m *resendSvcMock) CreateContact(ctx context.Context, p rsvc.CreateContactParams) (string, error) {
	if m.CreateContactFunc == nil {
		return "", errNotStubbed
	}
	return m.CreateContactFunc(ctx, p)
}

func (m *resendSvcMock) ListContacts(ctx context.Context, audienceID string) ([]rsvc.Contact, error) {
	if m.ListContactsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListContactsFunc(ctx, audienceID)
}

func (m *resendSvcMock) GetContact(ctx context.Context, audienceID, key string) (*rsvc.Contact, error) {
	if m.GetContactFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetContactFunc(ctx, audienceID, key)
}

func (m *resendSvcMock) UpdateContact(ctx context.Context, p rsvc.UpdateContactParams) error {
	if m.UpdateContactFunc == nil {
		return errNotStubbed
	}
	return m.UpdateContactFunc(ctx, p)
}

func (m *resendSvcMock) DeleteContact(ctx context.Context, audienceID, key string) error {
	if m.DeleteContactFunc == nil {
		return errNotStubbed
	}
	return m.DeleteContactFunc(ctx, audienceID, key)
}

func (m *resendSvcMock) CreateBroadcast(ctx context.Context, p rsvc.CreateBroadcastParams) (string, error) {
	if m.CreateBroadcastFunc == nil {
		return "", errNotStubbed
	}
	return m.CreateBroadcastFunc(ctx, p)
}

func (m *resendSvcMock) ListBroadcasts(ctx context.Context) ([]rsvc.Broadcast, error) {
	if m.ListBroadcastsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListBroadcastsFunc(ctx)
}

func (m *resendSvcMock) GetBroadcast(ctx context.Context, broadcastID string) (*rsvc.Broadcast, error) {
	if m.GetBroadcastFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetBroadcastFunc(ctx, broadcastID)
}

func (m *resendSvcMock) SendBroadcast(ctx context.Context, broadcastID, scheduledAt string) (string, error) {
	if m.SendBroadcastFunc == nil {
		return "", errNotStubbed
	}
	return m.SendBroadcastFunc(ctx, broadcastID, scheduledAt)
}

func (m *resendSvcMock) DeleteBroadcast(ctx context.Context, broadcastID string) error {
	if m.DeleteBroadcastFunc == nil {
		return errNotStubbed
	}
	return m.DeleteBroadcastFunc(ctx, broadcastID)
}

func newSession(t *testing.T, svc *resendSvcMock, defaults *config.Defaults) *mcp.ClientSession {
	t.Helper()

	server := tool.NewServer(svc, defaults)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

// callTool invokes a tool and returns its first text content plus the error flag.
func callTool(t *testing.T, session *mcp.ClientSession, name string, args any) (string, bool) {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	return result.Content[0].(*mcp.TextContent).Text, result.IsError
}
