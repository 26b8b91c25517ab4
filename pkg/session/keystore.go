package session

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/metrics"
)

// KeyError is returned when a candidate credential is rejected.
type KeyError struct {
	Err error
}

func (e *KeyError) Error() string { return "Invalid API Key: " + e.Err.Error() }

func (e *KeyError) Unwrap() error { return e.Err }

// KeyStore validates credentials and attaches them to sessions.
type KeyStore struct {
	validator llm.KeyValidator
	factory   llm.Factory
	log       *zap.Logger
	metrics   *metrics.Recorder
}

func NewKeyStore(validator llm.KeyValidator, factory llm.Factory, log *zap.Logger, rec *metrics.Recorder) *KeyStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &KeyStore{validator: validator, factory: factory, log: log, metrics: rec}
}

// SetKey validates candidate against the provider and, only on success,
// stores it on the session together with a fresh assistant.
func (k *KeyStore) SetKey(ctx context.Context, s *Session, candidate string) error {
	key := strings.TrimSpace(candidate)
	if err := k.validator.Validate(ctx, key); err != nil {
		k.metrics.KeyValidation(false)
		k.log.Info("api key rejected",
			zap.String("session", s.ID),
			zap.String("kind", string(llm.KindOf(err))),
		)
		return &KeyError{Err: err}
	}
	a, err := k.factory(key)
	if err != nil {
		k.metrics.KeyValidation(false)
		return &KeyError{Err: err}
	}
	s.setCredential(key, a)
	k.metrics.KeyValidation(true)
	k.log.Info("api key set", zap.String("session", s.ID))
	return nil
}
