package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one queued reply of MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays queued responses in order and records requests.
// An empty queue reports the provider as unavailable unless Auto is set,
// in which case it answers with a stub shaped by the request schema.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	Auto      bool
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.responses) == 0 {
		if !m.Auto {
			return nil, &ErrProviderUnavailable{}
		}
		m.responses = append(m.responses, autoReply(req))
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	resp := &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}
	return finish(req, resp)
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// autoReply builds a minimal reply satisfying req.Schema, or plain text.
func autoReply(req Request) MockResponse {
	var v any = "offline reply"
	if req.Schema != nil {
		v = stubFor(req.Schema.Definition)
	}
	content, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: err}
	}
	return MockResponse{Content: content}
}

// stubFor returns a value of the schema's type with every required
// property filled in.
func stubFor(schema map[string]any) any {
	switch schema["type"] {
	case "object":
		props, _ := schema["properties"].(map[string]any)
		out := map[string]any{}
		var required []string
		switch r := schema["required"].(type) {
		case []string:
			required = r
		case []any:
			for _, name := range r {
				if s, ok := name.(string); ok {
					required = append(required, s)
				}
			}
		}
		for _, name := range required {
			sub, _ := props[name].(map[string]any)
			out[name] = stubFor(sub)
		}
		return out
	case "array":
		return []any{}
	case "integer", "number":
		return 0
	case "boolean":
		return false
	case "string":
		if enum, ok := schema["enum"].([]any); ok && len(enum) > 0 {
			return enum[0]
		}
		return ""
	}
	return nil
}
