package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionOrderIsReversedCreationOrder(t *testing.T) {
	del := DeletionOrder()
	require.Len(t, del, len(CreationOrder))
	for i, kind := range CreationOrder {
		assert.Equal(t, kind, del[len(del)-1-i])
	}
	// Children before parents at both extremes.
	assert.Equal(t, CommentReactions, del[0])
	assert.Equal(t, Users, del[len(del)-1])
}

func TestMemStoreCreateAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	id1, err := m.Create(ctx, Users, map[string]any{"email": "a@taskloom.dev"})
	require.NoError(t, err)
	id2, err := m.Create(ctx, Users, map[string]any{"email": "b@taskloom.dev"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, m.Count(Users))

	rows := m.Rows(Users)
	require.Len(t, rows, 2)
	assert.Equal(t, id1, rows[0]["id"])
	assert.Equal(t, "a@taskloom.dev", rows[0]["email"])

	n, err := m.DeleteAll(ctx, Users)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = m.DeleteAll(ctx, Users)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "second wipe deletes nothing")
}

func TestMemStoreCopiesAttrs(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	attrs := map[string]any{"name": "before"}
	_, err := m.Create(ctx, Workspaces, attrs)
	require.NoError(t, err)

	attrs["name"] = "after"
	assert.Equal(t, "before", m.Rows(Workspaces)[0]["name"])
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New("oracle", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}

func TestClassifyConstraintErrors(t *testing.T) {
	err := classify(errors.New(`insert into tasks: ERROR: insert or update violates foreign key constraint "tasks_project_id_fkey"`))
	assert.ErrorIs(t, err, ErrConstraint)

	err = classify(errors.New("dial tcp: connection refused"))
	assert.NotErrorIs(t, err, ErrConstraint)
}

func TestNormalizeValue(t *testing.T) {
	v, err := normalizeValue(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	s := "x"
	v, err = normalizeValue(&s)
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	var np *string
	v, err = normalizeValue(np)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = normalizeValue([]string{"bug", "urgent"})
	require.NoError(t, err)
	assert.JSONEq(t, `["bug","urgent"]`, v.(string))
}
