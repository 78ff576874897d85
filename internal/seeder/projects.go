package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

var viewTypes = []model.ViewType{model.ViewList, model.ViewBoard, model.ViewTimeline}

var priorities = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

// stageProjects creates each project with its sections, tasks, subtasks and
// activity logs. The owning team is always drawn from the owning workspace's
// teams, so team and workspace never disagree.
func stageProjects(ctx context.Context, p *Pipeline) error {
	color.Cyan("  📝 Seeding projects (%d records)...", p.opts.Projects)

	for i := 0; i < p.opts.Projects; i++ {
		if err := p.createProject(ctx); err != nil {
			return err
		}
	}

	color.Green("  ✅ projects seeded successfully")
	return nil
}

func (p *Pipeline) createProject(ctx context.Context) error {
	arch := randutil.Pick(p.rng, archetypes)
	ws := randutil.Pick(p.rng, p.workspaces)
	team := randutil.Pick(p.rng, p.teamsByWorkspace[ws.ID])
	members := randutil.SampleN(p.rng, p.users, p.rng.Between(5, 12))
	owner := randutil.Pick(p.rng, members)

	project := &model.Project{
		Name:        fmt.Sprintf("%s %s", randutil.Pick(p.rng, arch.qualifiers), randutil.Pick(p.rng, arch.subjects)),
		Description: fmt.Sprintf("%s project owned by the %s team", arch.name, team.Name),
		WorkspaceID: ws.ID,
		TeamID:      team.ID,
		OwnerID:     owner.ID,
		Color:       randutil.Pick(p.rng, projectColors),
		Icon:        randutil.Pick(p.rng, projectIcons),
		ViewType:    randutil.Pick(p.rng, viewTypes),
	}
	id, err := p.create(ctx, store.Projects, project.Attrs())
	if err != nil {
		return fmt.Errorf("create project %s: %w", project.Name, err)
	}
	project.ID = id
	p.projects = append(p.projects, project)
	p.membersByProject[project.ID] = members

	for _, u := range members {
		role := model.RoleMember
		if u.ID == owner.ID {
			role = model.RoleAdmin
		}
		m := &model.ProjectMembership{ProjectID: project.ID, UserID: u.ID, Role: role}
		if _, err := p.create(ctx, store.ProjectMemberships, m.Attrs()); err != nil {
			return fmt.Errorf("create membership for project %s: %w", project.Name, err)
		}
	}

	for pos, name := range arch.sections {
		section := &model.Section{Name: name, ProjectID: project.ID, Position: pos}
		sid, err := p.create(ctx, store.Sections, section.Attrs())
		if err != nil {
			return fmt.Errorf("create section %s: %w", name, err)
		}
		section.ID = sid

		if err := p.fillSection(ctx, arch, project, section, pos, len(arch.sections)); err != nil {
			return err
		}
	}

	return nil
}

// fillSection generates 10-20 tasks for a section. Completion is
// tail-weighted: everything in the last section is done, the section before
// it completes at 70%, everything earlier stays open. That keeps
// "recently completed" views populated without special-casing them.
func (p *Pipeline) fillSection(ctx context.Context, arch archetype, project *model.Project, section *model.Section, sectionIdx, sectionCount int) error {
	members := p.membersByProject[project.ID]

	taskCount := p.rng.Between(10, 20)
	for pos := 0; pos < taskCount; pos++ {
		completed := false
		switch sectionIdx {
		case sectionCount - 1:
			completed = true
		case sectionCount - 2:
			completed = p.rng.Chance(0.7)
		}

		task := p.buildTask(arch, project, section, members, pos, completed, nil)
		if err := p.createTask(ctx, task); err != nil {
			return err
		}
		if err := p.logActivity(ctx, task, members); err != nil {
			return err
		}

		// 10% of tasks spawn 2-4 subtasks in the same project and section.
		if p.rng.Chance(0.1) {
			subCount := p.rng.Between(2, 4)
			for subPos := 0; subPos < subCount; subPos++ {
				sub := p.buildTask(arch, project, section, members, subPos, p.rng.Chance(0.4), &task.ID)
				sub.AssigneeID = nil
				if p.rng.Chance(0.7) { // subtasks are only partially triaged
					id := randutil.Pick(p.rng, members).ID
					sub.AssigneeID = &id
				}
				if err := p.createTask(ctx, sub); err != nil {
					return err
				}
				if err := p.logActivity(ctx, sub, members); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Pipeline) buildTask(arch archetype, project *model.Project, section *model.Section, members []*model.User, pos int, completed bool, parentID *string) *model.Task {
	task := &model.Task{
		Name:        fmt.Sprintf("%s %s", randutil.Pick(p.rng, arch.taskVerbs), randutil.Pick(p.rng, arch.taskThings)),
		Description: fmt.Sprintf("Part of %s.", project.Name),
		ProjectID:   project.ID,
		SectionID:   section.ID,
		CreatorID:   randutil.Pick(p.rng, members).ID,
		Completed:   completed,
		DueDate:     p.rollDueDate(),
		Priority:    randutil.Pick(p.rng, priorities),
		Tags:        randutil.SampleN(p.rng, taskTags, p.rng.Between(0, 3)),
		Position:    pos,
	}
	if parentID != nil {
		id := *parentID
		task.ParentTaskID = &id
	}
	if p.rng.Chance(0.85) {
		id := randutil.Pick(p.rng, members).ID
		task.AssigneeID = &id
	}
	if completed {
		at := p.rng.PastTime(30 * 24 * time.Hour)
		by := randutil.Pick(p.rng, members).ID
		task.CompletedAt = &at
		task.CompletedBy = &by
	}
	return task
}

func (p *Pipeline) createTask(ctx context.Context, task *model.Task) error {
	id, err := p.create(ctx, store.Tasks, task.Attrs())
	if err != nil {
		return fmt.Errorf("create task %s: %w", task.Name, err)
	}
	task.ID = id
	p.tasks = append(p.tasks, task)
	return nil
}

// rollDueDate picks one of four buckets uniformly: past within a year,
// near future within 30 days, far future within a year, or none.
func (p *Pipeline) rollDueDate() *time.Time {
	var due time.Time
	switch p.rng.Intn(4) {
	case 0:
		due = p.rng.PastTime(365 * 24 * time.Hour)
	case 1:
		due = p.rng.FutureTime(30 * 24 * time.Hour)
	case 2:
		due = p.rng.FutureTime(365 * 24 * time.Hour)
	default:
		return nil
	}
	return &due
}

// logActivity attaches 2-5 log entries to a task. Distinct action types are
// drawn first; once the candidate set is exhausted the remaining budget is
// filled with further update entries.
func (p *Pipeline) logActivity(ctx context.Context, task *model.Task, members []*model.User) error {
	candidates := []model.ActionType{model.ActionCreated, model.ActionAssigned, model.ActionUpdated}
	if task.Completed {
		candidates = append(candidates, model.ActionCompleted)
	}

	budget := p.rng.Between(2, 5)
	actions := randutil.SampleN(p.rng, candidates, budget)
	for len(actions) < budget {
		actions = append(actions, model.ActionUpdated)
	}

	for _, action := range actions {
		log := &model.ActivityLog{
			TaskID: task.ID,
			UserID: randutil.Pick(p.rng, members).ID,
			Action: action,
		}
		switch action {
		case model.ActionAssigned:
			assignee := randutil.Pick(p.rng, members)
			if task.AssigneeID != nil {
				for _, m := range members {
					if m.ID == *task.AssigneeID {
						assignee = m
						break
					}
				}
			}
			log.Details = model.ActionDetails{AssigneeID: assignee.ID, AssigneeName: assignee.Name}
		case model.ActionUpdated:
			log.Details = model.ActionDetails{Field: randutil.Pick(p.rng, updatedFields)}
		case model.ActionCompleted:
			if task.CompletedBy != nil {
				log.UserID = *task.CompletedBy
			}
		}

		if _, err := p.create(ctx, store.ActivityLogs, log.Attrs()); err != nil {
			return fmt.Errorf("create activity log for task %s: %w", task.Name, err)
		}
	}
	return nil
}
