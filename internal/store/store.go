// Package store is the persistence layer the seeding pipeline writes
// through. Factories are storage-agnostic: they hand the store an entity
// kind and a column map and get back a generated id.
package store

import (
	"context"
	"errors"
	"fmt"
)

type EntityKind string

const (
	Users              EntityKind = "users"
	Workspaces         EntityKind = "workspaces"
	Teams              EntityKind = "teams"
	TeamMemberships    EntityKind = "team_memberships"
	Projects           EntityKind = "projects"
	ProjectMemberships EntityKind = "project_memberships"
	Sections           EntityKind = "sections"
	Tasks              EntityKind = "tasks"
	ActivityLogs       EntityKind = "activity_logs"
	Comments           EntityKind = "comments"
	CommentReactions   EntityKind = "comment_reactions"
)

// CreationOrder is the total order in which entity kinds must be created so
// that every foreign key references an already-existing row. DeletionOrder
// derives from it; the two must never be maintained separately.
var CreationOrder = []EntityKind{
	Users,
	Workspaces,
	Teams,
	TeamMemberships,
	Projects,
	ProjectMemberships,
	Sections,
	Tasks,
	ActivityLogs,
	Comments,
	CommentReactions,
}

// DeletionOrder returns the exact reverse of CreationOrder.
func DeletionOrder() []EntityKind {
	out := make([]EntityKind, len(CreationOrder))
	for i, k := range CreationOrder {
		out[len(CreationOrder)-1-i] = k
	}
	return out
}

// ErrConstraint marks a referential-integrity failure reported by the
// storage engine. The pipeline treats it as a defect in its own ordering,
// never as a retryable condition.
var ErrConstraint = errors.New("constraint violation")

type Store interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Create inserts one row and returns its generated id.
	Create(ctx context.Context, kind EntityKind, attrs map[string]any) (string, error)

	// DeleteAll removes every row of the given kind and returns the count.
	DeleteAll(ctx context.Context, kind EntityKind) (int64, error)
}

// New returns a store for the given provider.
func New(provider, url string, verbose bool) (Store, error) {
	switch provider {
	case "postgresql", "postgres", "mysql", "sqlite", "sqlite3":
		return NewSQLStore(provider, url, verbose), nil
	case "memory":
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
