package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const gcDiscardRatio = 0.5

// Open opens the store described by config. A nil logger silences badger.
func Open(config Config, logger badger.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(config.Dir).
		WithSyncWrites(config.SyncWrites).
		WithLogger(logger)
	if config.InMemory {
		opts = opts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return db, nil
}

func newDB(config Config, logger *badgerLogger) (*badger.DB, error) {
	return Open(config, logger)
}

// collectGarbage rewrites value log files until there is nothing left to reclaim.
func collectGarbage(db *badger.DB) (int, error) {
	rewritten := 0
	for {
		err := db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("value log gc: %w", err)
		}
		rewritten++
	}
}
