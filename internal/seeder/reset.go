package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/taskloom/taskseed/internal/store"
)

// stageReset wipes every collection in exact reverse-dependency order.
// The order is load-bearing: deleting a parent before its children would
// violate (or silently orphan, depending on the engine) foreign keys.
// Running against an already-empty store deletes zero rows and is not an
// error.
func stageReset(ctx context.Context, p *Pipeline) error {
	color.Yellow("🗑️  Wiping existing data...")

	for _, kind := range store.DeletionOrder() {
		n, err := p.store.DeleteAll(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", kind, err)
		}
		p.deleted[kind] = n
		if n > 0 {
			color.White("  • %s: %d rows deleted", kind, n)
		}
	}
	return nil
}

// Reset runs only the destructive stage, for the standalone reset command.
func Reset(ctx context.Context, st store.Store) (map[store.EntityKind]int64, error) {
	if err := probeConnection(ctx, st); err != nil {
		return nil, err
	}
	p := newPipeline(st, Options{Users: 1})
	if err := stageReset(ctx, p); err != nil {
		return nil, err
	}
	return p.deleted, nil
}
