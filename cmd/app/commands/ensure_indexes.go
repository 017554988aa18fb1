package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// IndexEnsurer creates the collection indexes and reports their names.
type IndexEnsurer func(ctx context.Context) ([]string, error)

// RunEnsureIndexes creates any missing index of the digital users collection.
// Safe to run repeatedly.
func RunEnsureIndexes(ctx context.Context, ensure IndexEnsurer, logger *slog.Logger, out io.Writer) error {
	logger.Info("ensuring indexes")

	names, err := ensure(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}

	logger.Info("indexes ensured", slog.Int("count", len(names)))
	return nil
}
