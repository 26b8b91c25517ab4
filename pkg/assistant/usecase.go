// Package assistant orchestrates one chat turn: compose the question, call the
// session's assistant and record the exchange.
package assistant

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/kirana/pkg/inventory"
	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/metrics"
	"github.com/artem13815/kirana/pkg/order"
	"github.com/artem13815/kirana/pkg/session"
)

// ErrNoCredential is returned before any gateway call when the session has no key.
var ErrNoCredential = errors.New("api key not set")

// Request carries the free text and the item quantities from the order form.
type Request struct {
	Question   string
	Quantities map[string]int
}

type Result struct {
	Question string
	Answer   string
}

// UseCase describes the chat operations available to a session.
type UseCase interface {
	// Chat returns order.ErrEmptyRequest, ErrNoCredential or an *llm.Error on failure.
	// Result.Question is filled whenever a question was composed.
	Chat(ctx context.Context, s *session.Session, req Request) (Result, error)
	ClearHistory(ctx context.Context, s *session.Session) error
	History(s *session.Session) []session.Exchange
}

type service struct {
	catalog *inventory.Catalog
	mode    string
	log     *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService returns the default UseCase. mode only labels logs and metrics.
func NewService(catalog *inventory.Catalog, mode string, log *zap.Logger, rec *metrics.Recorder) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{catalog: catalog, mode: mode, log: log, metrics: rec, now: time.Now}
}

func (s *service) Chat(ctx context.Context, sess *session.Session, req Request) (Result, error) {
	a := sess.Assistant()
	if a == nil {
		return Result{}, ErrNoCredential
	}
	question, err := order.Compose(order.Lines(s.catalog, req.Quantities), req.Question)
	if err != nil {
		return Result{}, err
	}
	res := Result{Question: question}
	if !sess.Allow() {
		return res, llm.Errorf(llm.KindRateLimit, "too many requests from this session, try again in a moment")
	}

	start := s.now()
	answer, err := a.Ask(ctx, question)
	elapsed := s.now().Sub(start)

	ex := session.Exchange{Question: question, At: start.UTC()}
	if err != nil {
		kind := llm.KindOf(err)
		ex.Answer, ex.Failed, ex.ErrorKind = err.Error(), true, kind
		sess.Append(ex)
		s.metrics.ObserveChat(s.mode, string(kind), elapsed)
		s.log.Warn("chat failed",
			zap.String("session", sess.ID),
			zap.String("kind", string(kind)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return res, err
	}
	ex.Answer = answer
	sess.Append(ex)
	s.metrics.ObserveChat(s.mode, "ok", elapsed)
	s.log.Debug("chat answered",
		zap.String("session", sess.ID),
		zap.Int("questionChars", len(question)),
		zap.Duration("elapsed", elapsed),
	)
	res.Answer = answer
	return res, nil
}

func (s *service) ClearHistory(ctx context.Context, sess *session.Session) error {
	sess.ClearTranscript()
	if a := sess.Assistant(); a != nil {
		return a.Reset(ctx)
	}
	return nil
}

func (s *service) History(sess *session.Session) []session.Exchange {
	return sess.Transcript()
}
