package app

import (
	"context"
	"log/slog"

	"github.com/five82/showroom/internal/logging"
	"github.com/five82/showroom/internal/state"
)

// StartDetection runs one country detection in the background and returns
// immediately. The channel receives the result and is then closed; callers
// that only watch the store may ignore it.
func StartDetection(ctx context.Context, store *state.CountryStore, logger *slog.Logger) <-chan state.DetectResult {
	logger = logging.OrDiscard(logger)
	out := make(chan state.DetectResult, 1)
	go func() {
		defer close(out)
		res := store.DetectCountry(ctx)
		if res.Outcome == state.OutcomeSkipped {
			logger.Debug("background detection skipped", "reason", res.Reason)
		}
		out <- res
	}()
	return out
}
