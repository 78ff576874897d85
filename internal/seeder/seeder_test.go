package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/store"
)

func runPipeline(t *testing.T, opts Options) (*store.MemStore, *Summary) {
	t.Helper()
	m := store.NewMemStore()
	summary, err := Run(context.Background(), m, opts)
	require.NoError(t, err)
	return m, summary
}

func strField(t *testing.T, row map[string]any, key string) *string {
	t.Helper()
	v, ok := row[key]
	require.True(t, ok, "row missing %s", key)
	if v == nil {
		return nil
	}
	p, ok := v.(*string)
	require.True(t, ok, "%s is not a *string", key)
	return p
}

func TestFullRunInvariants(t *testing.T) {
	m, summary := runPipeline(t, Options{Users: 50, Projects: 20, CommentTasks: 30, RandSeed: 42})

	users := m.Rows(store.Users)
	projects := m.Rows(store.Projects)
	sections := m.Rows(store.Sections)
	tasks := m.Rows(store.Tasks)

	t.Run("entity counts", func(t *testing.T) {
		assert.Len(t, users, 50)
		assert.Len(t, m.Rows(store.Workspaces), 3)
		assert.Len(t, projects, 20)
		assert.Equal(t, 50, summary.Created[store.Users])
		assert.Equal(t, summary.TotalCreated(),
			m.Count(store.Users)+m.Count(store.Workspaces)+m.Count(store.Teams)+
				m.Count(store.TeamMemberships)+m.Count(store.Projects)+
				m.Count(store.ProjectMemberships)+m.Count(store.Sections)+
				m.Count(store.Tasks)+m.Count(store.ActivityLogs)+
				m.Count(store.Comments)+m.Count(store.CommentReactions))
	})

	t.Run("known credentials user", func(t *testing.T) {
		var known map[string]any
		for _, u := range users {
			if u["email"] == KnownUserEmail {
				known = u
				break
			}
		}
		require.NotNil(t, known, "fixed test account missing")
		hash := known["password_hash"].(string)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(KnownUserPassword)))
	})

	t.Run("emails unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, u := range users {
			email := u["email"].(string)
			assert.False(t, seen[email], "duplicate email %s", email)
			seen[email] = true
		}
	})

	t.Run("task-assigned notification always on", func(t *testing.T) {
		for _, u := range users {
			prefs := u["notifications"].(model.NotificationPrefs)
			assert.True(t, prefs.TaskAssigned)
		}
	})

	t.Run("teams belong to project workspace", func(t *testing.T) {
		teamWorkspace := make(map[string]string)
		for _, team := range m.Rows(store.Teams) {
			teamWorkspace[team["id"].(string)] = team["workspace_id"].(string)
		}
		for _, p := range projects {
			assert.Equal(t, p["workspace_id"].(string), teamWorkspace[p["team_id"].(string)])
		}
	})

	t.Run("section positions contiguous per project", func(t *testing.T) {
		byProject := make(map[string][]int)
		for _, s := range sections {
			byProject[s["project_id"].(string)] = append(byProject[s["project_id"].(string)], s["position"].(int))
		}
		require.Len(t, byProject, 20)
		for projectID, positions := range byProject {
			// Section templates have 5 (engineering) or 4 (marketing) entries.
			assert.Contains(t, []int{4, 5}, len(positions), "project %s", projectID)
			seen := make(map[int]bool)
			for _, pos := range positions {
				seen[pos] = true
			}
			for want := 0; want < len(positions); want++ {
				assert.True(t, seen[want], "project %s missing section position %d", projectID, want)
			}
		}
	})

	t.Run("completion fields consistent", func(t *testing.T) {
		for _, task := range tasks {
			completed := task["completed"].(bool)
			at, ok := task["completed_at"].(*time.Time)
			require.True(t, ok)
			by := strField(t, task, "completed_by")
			if completed {
				require.NotNil(t, at, "completed task missing completed_at")
				require.NotNil(t, by, "completed task missing completed_by")
			} else {
				assert.Nil(t, at, "open task has completed_at set")
				assert.Nil(t, by, "open task has completed_by set")
			}
		}
	})

	t.Run("last section tasks all completed", func(t *testing.T) {
		lastSections := lastSectionIDs(sections)
		checked := 0
		for _, task := range tasks {
			if strField(t, task, "parent_task_id") != nil {
				continue // subtasks roll completion independently
			}
			if lastSections[task["section_id"].(string)] {
				assert.True(t, task["completed"].(bool), "open task in a Done/Launched section")
				checked++
			}
		}
		assert.Greater(t, checked, 0)
	})

	t.Run("assignees are project members", func(t *testing.T) {
		members := make(map[string]map[string]bool)
		for _, pm := range m.Rows(store.ProjectMemberships) {
			pid := pm["project_id"].(string)
			if members[pid] == nil {
				members[pid] = make(map[string]bool)
			}
			members[pid][pm["user_id"].(string)] = true
		}
		for _, task := range tasks {
			if assignee := strField(t, task, "assignee_id"); assignee != nil {
				assert.True(t, members[task["project_id"].(string)][*assignee],
					"assignee not a member of the task's project")
			}
		}
	})

	t.Run("subtasks stay in parent project and section", func(t *testing.T) {
		byID := make(map[string]map[string]any)
		for _, task := range tasks {
			byID[task["id"].(string)] = task
		}
		subtasks := 0
		for _, task := range tasks {
			parentID := strField(t, task, "parent_task_id")
			if parentID == nil {
				continue
			}
			subtasks++
			parent, ok := byID[*parentID]
			require.True(t, ok, "subtask parent missing")
			assert.Equal(t, parent["project_id"], task["project_id"])
			assert.Equal(t, parent["section_id"], task["section_id"])
			assert.Nil(t, strField(t, parent, "parent_task_id"), "subtask parent is itself a subtask")
		}
		assert.Greater(t, subtasks, 0, "no subtasks generated at this volume")
	})

	t.Run("activity logs", func(t *testing.T) {
		completedTasks := make(map[string]bool)
		taskIDs := make(map[string]bool)
		for _, task := range tasks {
			id := task["id"].(string)
			taskIDs[id] = true
			completedTasks[id] = task["completed"].(bool)
		}

		perTask := make(map[string]int)
		for _, log := range m.Rows(store.ActivityLogs) {
			taskID := log["task_id"].(string)
			require.True(t, taskIDs[taskID], "log references unknown task")
			perTask[taskID]++

			action := log["action"].(string)
			details := log["details"].(model.ActionDetails)
			switch model.ActionType(action) {
			case model.ActionAssigned:
				assert.NotEmpty(t, details.AssigneeID)
				assert.NotEmpty(t, details.AssigneeName)
			case model.ActionUpdated:
				assert.NotEmpty(t, details.Field)
			case model.ActionCompleted:
				assert.True(t, completedTasks[taskID], "completed log on an open task")
			case model.ActionCreated:
			default:
				t.Errorf("unknown action type %s", action)
			}
		}

		for taskID := range taskIDs {
			n := perTask[taskID]
			assert.GreaterOrEqual(t, n, 2, "task has fewer than 2 logs")
			assert.LessOrEqual(t, n, 5, "task has more than 5 logs")
		}
	})

	t.Run("comments and reactions", func(t *testing.T) {
		comments := m.Rows(store.Comments)
		byID := make(map[string]map[string]any)
		topLevelPerTask := make(map[string]int)
		for _, c := range comments {
			byID[c["id"].(string)] = c
			if strField(t, c, "parent_comment_id") == nil {
				topLevelPerTask[c["task_id"].(string)]++
			}
		}

		assert.LessOrEqual(t, len(topLevelPerTask), 30)
		assert.NotEmpty(t, topLevelPerTask)
		for taskID, n := range topLevelPerTask {
			assert.GreaterOrEqual(t, n, 2, "task %s has too few comments", taskID)
			assert.LessOrEqual(t, n, 10, "task %s has too many comments", taskID)
		}

		for _, c := range comments {
			parentID := strField(t, c, "parent_comment_id")
			if parentID == nil {
				continue
			}
			parent, ok := byID[*parentID]
			require.True(t, ok, "reply references missing comment")
			assert.Nil(t, strField(t, parent, "parent_comment_id"), "reply nests deeper than one level")
			assert.Equal(t, parent["task_id"], c["task_id"], "reply crosses tasks")
		}

		userIDs := make(map[string]bool)
		for _, u := range users {
			userIDs[u["id"].(string)] = true
		}
		reactorsPerComment := make(map[string]map[string]bool)
		for _, r := range m.Rows(store.CommentReactions) {
			commentID := r["comment_id"].(string)
			_, ok := byID[commentID]
			require.True(t, ok, "reaction references missing comment")
			require.True(t, userIDs[r["user_id"].(string)], "reaction references missing user")
			assert.NotEmpty(t, r["emoji"].(string))

			if reactorsPerComment[commentID] == nil {
				reactorsPerComment[commentID] = make(map[string]bool)
			}
			userID := r["user_id"].(string)
			assert.False(t, reactorsPerComment[commentID][userID], "same user reacted twice to one comment")
			reactorsPerComment[commentID][userID] = true
		}
	})
}

func lastSectionIDs(sections []map[string]any) map[string]bool {
	maxPos := make(map[string]int)
	for _, s := range sections {
		pid := s["project_id"].(string)
		if pos := s["position"].(int); pos > maxPos[pid] {
			maxPos[pid] = pos
		}
	}
	last := make(map[string]bool)
	for _, s := range sections {
		if s["position"].(int) == maxPos[s["project_id"].(string)] {
			last[s["id"].(string)] = true
		}
	}
	return last
}

func TestRunWithZeroProjects(t *testing.T) {
	m, _ := runPipeline(t, Options{Users: 5, Projects: 0, CommentTasks: 30, RandSeed: 1})

	assert.Equal(t, 0, m.Count(store.Tasks))
	assert.Equal(t, 0, m.Count(store.Comments), "comment stage must handle an empty task pool")
	assert.Equal(t, 0, m.Count(store.CommentReactions))
	assert.Equal(t, 5, m.Count(store.Users))
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	_, a := runPipeline(t, Options{Users: 20, Projects: 5, CommentTasks: 10, RandSeed: 1234})
	_, b := runPipeline(t, Options{Users: 20, Projects: 5, CommentTasks: 10, RandSeed: 1234})
	assert.Equal(t, a.Created, b.Created)
}

func TestResetIdempotent(t *testing.T) {
	m, summary := runPipeline(t, Options{Users: 10, Projects: 2, CommentTasks: 5, RandSeed: 7})

	deleted, err := Reset(context.Background(), m)
	require.NoError(t, err)

	var total int64
	for _, n := range deleted {
		total += n
	}
	assert.EqualValues(t, summary.TotalCreated(), total)

	deleted, err = Reset(context.Background(), m)
	require.NoError(t, err)
	for kind, n := range deleted {
		assert.EqualValues(t, 0, n, "second reset deleted rows from %s", kind)
	}
	for _, kind := range store.CreationOrder {
		assert.Equal(t, 0, m.Count(kind))
	}
}

func TestRunResetsPreviousData(t *testing.T) {
	m, _ := runPipeline(t, Options{Users: 10, Projects: 2, CommentTasks: 5, RandSeed: 7})

	summary, err := Run(context.Background(), m, Options{Users: 8, Projects: 1, CommentTasks: 2, RandSeed: 8})
	require.NoError(t, err)

	assert.Equal(t, 8, m.Count(store.Users), "rerun must wipe before rebuilding")
	assert.EqualValues(t, 10, summary.Deleted[store.Users])
}
