// Package seeder generates the synthetic entity graph: users, workspaces,
// teams, projects with sections, tasks, subtasks and activity logs, then
// comments and reactions. Stages run strictly in dependency order; every
// run starts from a full wipe.
package seeder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

// stages is the pipeline in dependency order. Each stage may only read
// entities produced by the stages before it; reordering this list is a
// correctness bug, not a style choice.
var stages = []stage{
	{"reset", stageReset},
	{"users", stageUsers},
	{"workspaces", stageWorkspaces},
	{"projects", stageProjects},
	{"comments", stageComments},
}

func newPipeline(st store.Store, opts Options) *Pipeline {
	return &Pipeline{
		store:            st,
		opts:             opts,
		rng:              randutil.New(opts.RandSeed),
		emails:           randutil.NewEmailSet(),
		teamsByWorkspace: make(map[string][]*model.Team),
		membersByProject: make(map[string][]*model.User),
		commentsByID:     make(map[string]*model.Comment),
		counts:           make(map[store.EntityKind]int),
		deleted:          make(map[store.EntityKind]int64),
	}
}

// Run executes the full pipeline against the given store and returns the
// summary. The store is closed before Run returns, whatever the exit path.
func Run(ctx context.Context, st store.Store, opts Options) (*Summary, error) {
	defer st.Close()

	color.Cyan("🌱 Starting database seeding...")
	start := time.Now()

	if err := probeConnection(ctx, st); err != nil {
		return nil, err
	}

	p := newPipeline(st, opts)
	for _, s := range stages {
		if err := s.run(ctx, p); err != nil {
			return nil, fmt.Errorf("stage %s: %w", s.name, err)
		}
	}

	summary := &Summary{
		Created:  p.counts,
		Deleted:  p.deleted,
		Duration: time.Since(start),
	}
	color.Green("\n✅ Database seeding completed successfully!")
	return summary, nil
}

// PrintSummary renders the per-entity counts and total duration.
func PrintSummary(s *Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Entity", "Created"})
	for _, kind := range store.CreationOrder {
		t.AppendRow(table.Row{string(kind), s.Created[kind]})
	}
	t.AppendFooter(table.Row{"total", s.TotalCreated()})
	t.Render()
	color.Cyan("⏱  Completed in %s", s.Duration.Round(time.Millisecond))
}
