package ledger_core

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// CustomHandler runs after a unit of work is committed.
type CustomHandler func(ctx context.Context, info *CommitInfo) error

var (
	customLock    sync.RWMutex
	customHandler = map[string]CustomHandler{}
)

func RegisterCustomHandler(name string, handler CustomHandler) func() {
	customLock.Lock()
	defer customLock.Unlock()

	customHandler[name] = handler
	return func() {
		customLock.Lock()
		defer customLock.Unlock()

		delete(customHandler, name)
	}
}

// runCustomHandler never fails the caller. The ledger is already
// committed when it runs.
func runCustomHandler(ctx context.Context, info *CommitInfo) {
	customLock.RLock()
	names := make([]string, 0, len(customHandler))
	for name := range customHandler {
		names = append(names, name)
	}
	handlers := make(map[string]CustomHandler, len(customHandler))
	for name, handler := range customHandler {
		handlers[name] = handler
	}
	customLock.RUnlock()

	sort.Strings(names)
	for _, name := range names {
		err := handlers[name](ctx, info)
		if err != nil {
			slog.Error("custom handler failed",
				slog.String("handler", name),
				slog.String("record_id", info.RecordID),
				slog.String("error", err.Error()),
			)
		}
	}
}
