package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

var memberRoles = []model.Role{model.RoleMember, model.RoleAdmin, model.RoleViewer}

// stageWorkspaces creates the fixed workspaces, then 2-4 teams per
// workspace, each with a 5-15 strong membership sampled without replacement.
func stageWorkspaces(ctx context.Context, p *Pipeline) error {
	color.Cyan("  📝 Seeding workspaces and teams...")

	for _, seed := range workspaceSeeds {
		ws := &model.Workspace{Name: seed.name, Description: seed.description}
		id, err := p.create(ctx, store.Workspaces, ws.Attrs())
		if err != nil {
			return fmt.Errorf("create workspace %s: %w", ws.Name, err)
		}
		ws.ID = id
		p.workspaces = append(p.workspaces, ws)

		teamCount := p.rng.Between(2, 4)
		labels := randutil.SampleN(p.rng, teamTypes, teamCount)
		for _, label := range labels {
			if err := p.createTeam(ctx, ws, label); err != nil {
				return err
			}
		}
	}

	color.Green("  ✅ workspaces and teams seeded successfully")
	return nil
}

func (p *Pipeline) createTeam(ctx context.Context, ws *model.Workspace, label string) error {
	team := &model.Team{
		Name:        fmt.Sprintf("%s %s", ws.Name, label),
		Description: fmt.Sprintf("%s team for %s", label, ws.Name),
		WorkspaceID: ws.ID,
	}
	id, err := p.create(ctx, store.Teams, team.Attrs())
	if err != nil {
		return fmt.Errorf("create team %s: %w", team.Name, err)
	}
	team.ID = id
	p.teamsByWorkspace[ws.ID] = append(p.teamsByWorkspace[ws.ID], team)

	members := randutil.SampleN(p.rng, p.users, p.rng.Between(5, 15))
	for _, u := range members {
		m := &model.TeamMembership{
			TeamID: team.ID,
			UserID: u.ID,
			Role:   randutil.Pick(p.rng, memberRoles),
		}
		if _, err := p.create(ctx, store.TeamMemberships, m.Attrs()); err != nil {
			return fmt.Errorf("create membership for team %s: %w", team.Name, err)
		}
	}
	return nil
}
