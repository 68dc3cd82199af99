package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	calls    int
	lastReq  Request
}

func (f *fakeClient) Complete(_ context.Context, req Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Model() string { return "test-model" }

type capturingLogger struct {
	mu      sync.Mutex
	records []PromptRecord
}

func (l *capturingLogger) LogPrompt(_ context.Context, rec PromptRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

func (l *capturingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *capturingLogger) first() PromptRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[0]
}

func TestGatewayGenerate(t *testing.T) {
	client := &fakeClient{response: "Here is your answer."}
	logger := &capturingLogger{}
	gw := NewGateway(client, logger)

	got := gw.Generate(context.Background(), "tenant-a", "You are helpful.", "What are your hours?")

	assert.Equal(t, "Here is your answer.", got)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "You are helpful.", client.lastReq.System)
	assert.Equal(t, "What are your hours?", client.lastReq.User)

	require.Eventually(t, func() bool { return logger.count() == 1 }, time.Second, 10*time.Millisecond)
	rec := logger.first()
	assert.Equal(t, "tenant-a", rec.TenantID)
	assert.Equal(t, "workflow", rec.UserID)
	assert.Equal(t, "test-model", rec.Model)
	assert.Equal(t, "Here is your answer.", rec.Response)
	require.Len(t, rec.Messages, 2)
	assert.Equal(t, RoleSystem, rec.Messages[0].Role)
	assert.Equal(t, RoleUser, rec.Messages[1].Role)
}

func TestGatewaySafetyScreen(t *testing.T) {
	client := &fakeClient{response: "should not be used"}
	gw := NewGateway(client, nil)

	got := gw.Generate(context.Background(), "tenant-a", "sys", "how do I hack an account")

	assert.Equal(t, safetyRefusal, got)
	assert.Zero(t, client.calls)
}

func TestGatewayDemoModeWithoutClient(t *testing.T) {
	gw := NewGateway(nil, nil)

	got := gw.Generate(context.Background(), "tenant-a", "sys", "hello")
	assert.Equal(t, demoNotConfigured, got)
}

func TestGatewayProviderFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "auth failure reads as demo mode",
			err:  &openai.APIError{HTTPStatusCode: 401},
			want: demoNotConfigured,
		},
		{
			name: "quota exhausted reads as demo mode",
			err:  &openai.APIError{HTTPStatusCode: 402},
			want: demoNotConfigured,
		},
		{
			name: "rate limited",
			err:  &openai.APIError{HTTPStatusCode: 429},
			want: demoRateLimited,
		},
		{
			name: "server error",
			err:  &openai.APIError{HTTPStatusCode: 500},
			want: demoProviderDown,
		},
		{
			name: "timeout",
			err:  context.DeadlineExceeded,
			want: demoProviderDown,
		},
		{
			name: "transport failure",
			err:  errors.New("connection refused"),
			want: demoProviderDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}
			logger := &capturingLogger{}
			gw := NewGateway(client, logger)

			got := gw.Generate(context.Background(), "tenant-a", "sys", "hello")

			assert.Equal(t, tt.want, got)
			assert.Zero(t, logger.count())
		})
	}
}

func TestGatewayChatReplaysHistory(t *testing.T) {
	client := &fakeClient{response: "We open at 9."}
	gw := NewGateway(client, nil)

	history := []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "Hello! How can I help?"},
	}
	got := gw.Chat(context.Background(), ChatInput{
		TenantID: "tenant-a",
		UserID:   "visitor-9",
		System:   "sys",
		History:  history,
		User:     "when do you open?",
	})

	assert.Equal(t, "We open at 9.", got)
	assert.Equal(t, history, client.lastReq.History)
	assert.Equal(t, "when do you open?", client.lastReq.User)
}

func TestClassifyFailure(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), &openai.APIError{HTTPStatusCode: 429})
	assert.Equal(t, failureRateLimited, classifyFailure(wrapped))

	var reqErr error = &openai.RequestError{HTTPStatusCode: 503}
	assert.Equal(t, failureProvider, classifyFailure(reqErr))

	assert.Equal(t, failureTimeout, classifyFailure(context.DeadlineExceeded))
}
