package seeder

import (
	"context"
	"time"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

// Options are the knobs of one pipeline run.
type Options struct {
	Users        int
	Projects     int
	CommentTasks int
	RandSeed     int64 // 0 means time-based
}

// Pipeline carries the store handle, the RNG and the bookkeeping every
// stage needs from the stages before it. It is built once per run and
// threaded through each stage in order.
type Pipeline struct {
	store  store.Store
	opts   Options
	rng    *randutil.Rand
	emails *randutil.EmailSet

	users            []*model.User
	workspaces       []*model.Workspace
	teamsByWorkspace map[string][]*model.Team
	projects         []*model.Project
	membersByProject map[string][]*model.User
	tasks            []*model.Task
	commentsByID     map[string]*model.Comment

	counts  map[store.EntityKind]int
	deleted map[store.EntityKind]int64
}

// stage is one named step of the run. The orchestrator reduces over the
// stage list in order; the order is the dependency contract.
type stage struct {
	name string
	run  func(context.Context, *Pipeline) error
}

// Summary is the final report of a successful run.
type Summary struct {
	Created  map[store.EntityKind]int
	Deleted  map[store.EntityKind]int64
	Duration time.Duration
}

// TotalCreated sums created rows across all entity kinds.
func (s *Summary) TotalCreated() int {
	total := 0
	for _, n := range s.Created {
		total += n
	}
	return total
}

// create inserts one row and keeps the per-kind counter current.
func (p *Pipeline) create(ctx context.Context, kind store.EntityKind, attrs map[string]any) (string, error) {
	id, err := p.store.Create(ctx, kind, attrs)
	if err != nil {
		return "", err
	}
	p.counts[kind]++
	return id, nil
}
