package workflow

import (
	"context"
	"errors"

	"wordlist/internal/history"
	"wordlist/internal/logging"
)

func (m *Manager) recordFailure(ctx context.Context, run *history.Run, cause error) {
	logger := logging.WithContext(ctx, m.logger)
	logging.ErrorWithContext(logger, "collection failed", "collection_failure",
		logging.Error(cause),
		logging.String(logging.FieldErrorHint, "run `wordlist check` to see which sources are unreadable"),
	)

	if run == nil || m.store == nil {
		return
	}
	// The caller's context may already be cancelled; the failure still belongs in history.
	if err := m.store.Fail(context.WithoutCancel(ctx), run, cause); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug("could not record failed run", logging.Error(err))
			return
		}
		logger.Error("failed to persist run failure", logging.Error(err))
	}
}
