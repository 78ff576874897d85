// Package model defines the entity graph the seeding pipeline generates.
// Attrs() methods produce the column maps handed to the store; field names
// follow the application's schema.
package model

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ViewType string

const (
	ViewList     ViewType = "list"
	ViewBoard    ViewType = "board"
	ViewTimeline ViewType = "timeline"
)

type ActionType string

const (
	ActionCreated   ActionType = "created"
	ActionAssigned  ActionType = "assigned"
	ActionUpdated   ActionType = "updated"
	ActionCompleted ActionType = "completed"
)

// NotificationPrefs is the per-user notification bundle. TaskAssigned is
// always true for seeded users so assignment flows are visible in demos.
type NotificationPrefs struct {
	TaskAssigned   bool `json:"task_assigned"`
	TaskCompleted  bool `json:"task_completed"`
	CommentAdded   bool `json:"comment_added"`
	DueDateSoon    bool `json:"due_date_soon"`
	WeeklyDigest   bool `json:"weekly_digest"`
	MentionedInDoc bool `json:"mentioned"`
}

type User struct {
	ID            string
	Email         string
	Name          string
	Initials      string
	AvatarURL     string
	PasswordHash  string
	Theme         string
	Notifications NotificationPrefs
}

func (u *User) Attrs() map[string]any {
	return map[string]any{
		"email":         u.Email,
		"name":          u.Name,
		"initials":      u.Initials,
		"avatar_url":    u.AvatarURL,
		"password_hash": u.PasswordHash,
		"theme":         u.Theme,
		"notifications": u.Notifications,
	}
}

type Workspace struct {
	ID          string
	Name        string
	Description string
}

func (w *Workspace) Attrs() map[string]any {
	return map[string]any{
		"name":        w.Name,
		"description": w.Description,
	}
}

type Team struct {
	ID          string
	Name        string
	Description string
	WorkspaceID string
}

func (t *Team) Attrs() map[string]any {
	return map[string]any{
		"name":         t.Name,
		"description":  t.Description,
		"workspace_id": t.WorkspaceID,
	}
}

type TeamMembership struct {
	ID     string
	TeamID string
	UserID string
	Role   Role
}

func (m *TeamMembership) Attrs() map[string]any {
	return map[string]any{
		"team_id": m.TeamID,
		"user_id": m.UserID,
		"role":    string(m.Role),
	}
}

type Project struct {
	ID          string
	Name        string
	Description string
	WorkspaceID string
	TeamID      string
	OwnerID     string
	Color       string
	Icon        string
	ViewType    ViewType
}

func (p *Project) Attrs() map[string]any {
	return map[string]any{
		"name":         p.Name,
		"description":  p.Description,
		"workspace_id": p.WorkspaceID,
		"team_id":      p.TeamID,
		"owner_id":     p.OwnerID,
		"color":        p.Color,
		"icon":         p.Icon,
		"view_type":    string(p.ViewType),
	}
}

type ProjectMembership struct {
	ID        string
	ProjectID string
	UserID    string
	Role      Role
}

func (m *ProjectMembership) Attrs() map[string]any {
	return map[string]any{
		"project_id": m.ProjectID,
		"user_id":    m.UserID,
		"role":       string(m.Role),
	}
}

type Section struct {
	ID        string
	Name      string
	ProjectID string
	Position  int
}

func (s *Section) Attrs() map[string]any {
	return map[string]any{
		"name":       s.Name,
		"project_id": s.ProjectID,
		"position":   s.Position,
	}
}

type Task struct {
	ID           string
	Name         string
	Description  string
	ProjectID    string
	SectionID    string
	AssigneeID   *string
	CreatorID    string
	Completed    bool
	CompletedAt  *time.Time
	CompletedBy  *string
	DueDate      *time.Time
	Priority     Priority
	Tags         []string
	Position     int
	ParentTaskID *string
}

func (t *Task) Attrs() map[string]any {
	return map[string]any{
		"name":           t.Name,
		"description":    t.Description,
		"project_id":     t.ProjectID,
		"section_id":     t.SectionID,
		"assignee_id":    t.AssigneeID,
		"creator_id":     t.CreatorID,
		"completed":      t.Completed,
		"completed_at":   t.CompletedAt,
		"completed_by":   t.CompletedBy,
		"due_date":       t.DueDate,
		"priority":       string(t.Priority),
		"tags":           t.Tags,
		"position":       t.Position,
		"parent_task_id": t.ParentTaskID,
	}
}

// ActionDetails carries the type-specific payload of an activity log entry.
// Only the fields relevant to the action type are populated.
type ActionDetails struct {
	AssigneeID   string `json:"assignee_id,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`
	Field        string `json:"field,omitempty"`
}

type ActivityLog struct {
	ID      string
	TaskID  string
	UserID  string
	Action  ActionType
	Details ActionDetails
}

func (l *ActivityLog) Attrs() map[string]any {
	return map[string]any{
		"task_id": l.TaskID,
		"user_id": l.UserID,
		"action":  string(l.Action),
		"details": l.Details,
	}
}

type Comment struct {
	ID              string
	TaskID          string
	AuthorID        string
	Body            string
	ParentCommentID *string
}

func (c *Comment) Attrs() map[string]any {
	return map[string]any{
		"task_id":           c.TaskID,
		"author_id":         c.AuthorID,
		"body":              c.Body,
		"parent_comment_id": c.ParentCommentID,
	}
}

type CommentReaction struct {
	ID        string
	CommentID string
	UserID    string
	Emoji     string
}

func (r *CommentReaction) Attrs() map[string]any {
	return map[string]any{
		"comment_id": r.CommentID,
		"user_id":    r.UserID,
		"emoji":      r.Emoji,
	}
}
