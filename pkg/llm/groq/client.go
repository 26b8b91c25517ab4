// Package groq talks to the Groq chat completions API through its OpenAI-compatible surface.
package groq

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/kirana/pkg/llm"
)

const (
	DefaultBaseURL      = "https://api.groq.com/openai/v1"
	DefaultModel        = "llama-3.3-70b-versatile"
	DefaultSystemPrompt = "You are a Kirana store assistant. Include inventory and total cost info if provided."
)

// API is the subset of *openai.Client used here; tests substitute it.
type API interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

type Options struct {
	BaseURL      string
	Model        string
	SystemPrompt string
	// Timeout bounds a single upstream call; zero means only the caller's context applies.
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.SystemPrompt == "" {
		o.SystemPrompt = DefaultSystemPrompt
	}
	return o
}

// NewAPI returns an OpenAI SDK client pointed at the Groq endpoint.
func NewAPI(apiKey string, opts Options) *openai.Client {
	opts = opts.withDefaults()
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	return openai.NewClientWithConfig(cfg)
}

// Client is a stateless assistant: every Ask is one system+user completion.
type Client struct {
	api          API
	Model        string
	SystemPrompt string
	timeout      time.Duration
}

func New(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.Errorf(llm.KindNoCredential, "groq api key is empty")
	}
	return NewWithAPI(NewAPI(apiKey, opts), opts), nil
}

func NewWithAPI(api API, opts Options) *Client {
	opts = opts.withDefaults()
	return &Client{
		api:          api,
		Model:        opts.Model,
		SystemPrompt: opts.SystemPrompt,
		timeout:      opts.Timeout,
	}
}

// NewFactory builds direct-mode assistants, one per session credential.
func NewFactory(opts Options) llm.Factory {
	return func(apiKey string) (llm.Assistant, error) {
		c, err := New(apiKey, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Ask sends the question with the fixed system instruction and returns the reply verbatim.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.Errorf(llm.KindEmptyReply, "no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}

// Reset is a no-op: direct mode keeps no conversation state.
func (c *Client) Reset(context.Context) error { return nil }

// Validator checks keys by listing models with the candidate credential.
type Validator struct {
	opts   Options
	newAPI func(apiKey string) API
}

func NewValidator(opts Options) *Validator {
	return &Validator{
		opts:   opts,
		newAPI: func(apiKey string) API { return NewAPI(apiKey, opts) },
	}
}

func (v *Validator) Validate(ctx context.Context, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return llm.Errorf(llm.KindNoCredential, "api key is empty")
	}
	ctx, cancel := withTimeout(ctx, v.opts.Timeout)
	defer cancel()
	if _, err := v.newAPI(apiKey).ListModels(ctx); err != nil {
		return classify(err)
	}
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func classify(err error) *llm.Error {
	if kind, ok := llm.ContextKind(err); ok {
		return llm.NewError(kind, err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewError(llm.StatusKind(apiErr.HTTPStatusCode), err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return llm.NewError(llm.StatusKind(reqErr.HTTPStatusCode), err)
	}
	return llm.NewError(llm.KindTransport, err)
}
