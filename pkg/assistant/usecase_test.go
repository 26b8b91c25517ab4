package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/kirana/pkg/inventory"
	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/order"
	"github.com/artem13815/kirana/pkg/session"
)

type okValidator struct{}

func (okValidator) Validate(context.Context, string) error { return nil }

type recordingAssistant struct {
	questions []string
	resets    int
	err       error
}

func (r *recordingAssistant) Ask(_ context.Context, q string) (string, error) {
	r.questions = append(r.questions, q)
	if r.err != nil {
		return "", r.err
	}
	return "reply to " + q, nil
}

func (r *recordingAssistant) Reset(context.Context) error {
	r.resets++
	return nil
}

func setup(t *testing.T, ratePerMinute int) (UseCase, *session.Session, *recordingAssistant) {
	t.Helper()
	c, err := inventory.NewCatalog(inventory.DefaultItems())
	require.NoError(t, err)

	a := &recordingAssistant{}
	ks := session.NewKeyStore(okValidator{}, func(string) (llm.Assistant, error) { return a, nil }, nil, nil)
	s := session.NewRegistry(ratePerMinute, nil).GetOrCreate("sid")
	require.NoError(t, ks.SetKey(context.Background(), s, "gsk_test"))

	return NewService(c, "direct", nil, nil), s, a
}

func TestChat_NoCredential(t *testing.T) {
	c, err := inventory.NewCatalog(inventory.DefaultItems())
	require.NoError(t, err)
	uc := NewService(c, "direct", nil, nil)
	s := session.NewRegistry(0, nil).GetOrCreate("sid")

	_, err = uc.Chat(context.Background(), s, Request{Question: "hello"})
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Empty(t, s.Transcript())
}

func TestChat_EmptyRequestNeverCallsGateway(t *testing.T) {
	uc, s, a := setup(t, 0)

	_, err := uc.Chat(context.Background(), s, Request{Question: "  ", Quantities: map[string]int{"Rice": 0}})
	assert.ErrorIs(t, err, order.ErrEmptyRequest)
	assert.Empty(t, a.questions)
	assert.Empty(t, s.Transcript())
}

func TestChat_ComposesFromQuantities(t *testing.T) {
	uc, s, a := setup(t, 0)

	res, err := uc.Chat(context.Background(), s, Request{Quantities: map[string]int{"Rice": 2, "Milk": 1}})
	require.NoError(t, err)
	assert.Equal(t, "2 x Rice (₹120), 1 x Milk (₹50)", res.Question)
	assert.Equal(t, "reply to 2 x Rice (₹120), 1 x Milk (₹50)", res.Answer)
	assert.Equal(t, []string{res.Question}, a.questions)
}

func TestChat_FreeTextWins(t *testing.T) {
	uc, s, a := setup(t, 0)
	text := "What's a good recipe with rice and milk?"

	res, err := uc.Chat(context.Background(), s, Request{Question: text, Quantities: map[string]int{"Rice": 2}})
	require.NoError(t, err)
	assert.Equal(t, text, res.Question)
	assert.Equal(t, []string{text}, a.questions)
}

func TestChat_FailureIsRecordedAndTagged(t *testing.T) {
	uc, s, a := setup(t, 0)
	a.err = llm.Errorf(llm.KindAuth, "error, status code: 401, message: Invalid API Key")

	res, err := uc.Chat(context.Background(), s, Request{Question: "hello"})
	require.Error(t, err)
	assert.Equal(t, llm.KindAuth, llm.KindOf(err))
	assert.Equal(t, "hello", res.Question)
	assert.Empty(t, res.Answer)

	tr := s.Transcript()
	require.Len(t, tr, 1)
	assert.True(t, tr[0].Failed)
	assert.Equal(t, llm.KindAuth, tr[0].ErrorKind)
	assert.Contains(t, tr[0].Answer, "Invalid API Key")
}

func TestChat_TranscriptAndClear(t *testing.T) {
	uc, s, a := setup(t, 0)
	ctx := context.Background()

	for _, q := range []string{"one", "two"} {
		_, err := uc.Chat(ctx, s, Request{Question: q})
		require.NoError(t, err)
	}
	h := uc.History(s)
	require.Len(t, h, 2)
	assert.Equal(t, "one", h[0].Question)
	assert.Equal(t, "reply to two", h[1].Answer)

	require.NoError(t, uc.ClearHistory(ctx, s))
	assert.Empty(t, uc.History(s))
	assert.Equal(t, 1, a.resets)
	assert.True(t, s.HasKey(), "clearing history keeps the credential")
}

func TestClearHistory_WithoutKey(t *testing.T) {
	c, err := inventory.NewCatalog(inventory.DefaultItems())
	require.NoError(t, err)
	uc := NewService(c, "memory", nil, nil)
	s := session.NewRegistry(0, nil).GetOrCreate("sid")

	assert.NoError(t, uc.ClearHistory(context.Background(), s))
}

func TestChat_RateLimited(t *testing.T) {
	uc, s, a := setup(t, 1)
	ctx := context.Background()

	_, err := uc.Chat(ctx, s, Request{Question: "first"})
	require.NoError(t, err)

	_, err = uc.Chat(ctx, s, Request{Question: "second"})
	assert.Equal(t, llm.KindRateLimit, llm.KindOf(err))
	assert.Equal(t, []string{"first"}, a.questions)
	assert.Len(t, s.Transcript(), 1)
}
