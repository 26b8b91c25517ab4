// Package conversation wraps the chat model in a buffer memory that replays the
// running transcript as {history} on every call.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/prompts"
	"github.com/tmc/langchaingo/schema"

	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/llm/groq"
)

const promptTemplate = `{{.system}}

Current conversation:
{{.history}}
Human: {{.input}}
AI:`

// ModelFactory builds the underlying chat model for a credential.
type ModelFactory func(apiKey string) (llms.Model, error)

// GroqModel returns a factory for langchaingo's OpenAI driver aimed at Groq.
func GroqModel(baseURL, model string) ModelFactory {
	return func(apiKey string) (llms.Model, error) {
		m, err := openai.New(
			openai.WithToken(apiKey),
			openai.WithBaseURL(baseURL),
			openai.WithModel(model),
		)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

type Options struct {
	NewModel     ModelFactory
	SystemPrompt string
	// Window keeps only the last Window exchanges in the history; 0 keeps everything.
	Window  int
	Timeout time.Duration
}

// Assistant is a conversational chain with buffer memory. Calls on one
// Assistant are serialised.
type Assistant struct {
	apiKey string
	opts   Options

	mu     sync.Mutex
	memory schema.Memory
	chain  *chains.LLMChain
}

func New(apiKey string, opts Options) (*Assistant, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.Errorf(llm.KindNoCredential, "api key is empty")
	}
	if opts.NewModel == nil {
		opts.NewModel = GroqModel(groq.DefaultBaseURL, groq.DefaultModel)
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = groq.DefaultSystemPrompt
	}
	a := &Assistant{apiKey: apiKey, opts: opts}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFactory builds memory-mode assistants, one per session credential.
func NewFactory(opts Options) llm.Factory {
	return func(apiKey string) (llm.Assistant, error) {
		a, err := New(apiKey, opts)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

func (a *Assistant) build() error {
	model, err := a.opts.NewModel(a.apiKey)
	if err != nil {
		return llm.NewError(llm.KindUnknown, fmt.Errorf("init model: %w", err))
	}
	// Memoryless chain: Ask saves successful exchanges itself.
	a.memory = newMemory(a.opts.Window)
	a.chain = chains.NewLLMChain(model, prompts.PromptTemplate{
		Template:         promptTemplate,
		InputVariables:   []string{"history", "input"},
		TemplateFormat:   prompts.TemplateFormatGoTemplate,
		PartialVariables: map[string]any{"system": a.opts.SystemPrompt},
	})
	return nil
}

func newMemory(window int) schema.Memory {
	if window > 0 {
		return memory.NewConversationWindowBuffer(window)
	}
	return memory.NewConversationBuffer()
}

// Ask renders history plus question into the prompt, calls the model and
// records the exchange in memory on success.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}
	vars, err := a.memory.LoadMemoryVariables(ctx, map[string]any{})
	if err != nil {
		return "", llm.NewError(llm.KindUnknown, fmt.Errorf("load history: %w", err))
	}
	vars["input"] = question

	res, err := chains.Call(ctx, a.chain, vars)
	if err != nil {
		return "", classify(err)
	}
	out, _ := res[a.chain.OutputKey].(string)
	if strings.TrimSpace(out) == "" {
		return "", llm.Errorf(llm.KindEmptyReply, "model returned an empty reply")
	}
	err = a.memory.SaveContext(ctx,
		map[string]any{"input": question},
		map[string]any{"output": out},
	)
	if err != nil {
		return "", llm.NewError(llm.KindUnknown, fmt.Errorf("save history: %w", err))
	}
	return out, nil
}

// History returns the transcript exactly as it is injected into the prompt.
func (a *Assistant) History(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	vars, err := a.memory.LoadMemoryVariables(ctx, map[string]any{})
	if err != nil {
		return "", err
	}
	h, _ := vars[a.memory.GetMemoryKey(ctx)].(string)
	return h, nil
}

// Reset clears the transcript and rebuilds the model from the stored credential.
func (a *Assistant) Reset(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.memory.Clear(ctx); err != nil {
		return err
	}
	return a.build()
}

var statusRe = regexp.MustCompile(`\b(40[13]|429|5\d\d)\b`)

// classify maps driver errors to kinds. The OpenAI driver reports HTTP failures
// as text, so the status code is taken from the message.
func classify(err error) *llm.Error {
	if kind, ok := llm.ContextKind(err); ok {
		return llm.NewError(kind, err)
	}
	var e *llm.Error
	if errors.As(err, &e) {
		return e
	}
	if m := statusRe.FindString(err.Error()); m != "" {
		code, _ := strconv.Atoi(m)
		return llm.NewError(llm.StatusKind(code), err)
	}
	return llm.NewError(llm.KindUpstream, err)
}
