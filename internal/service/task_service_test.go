package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService() (*TaskService, *memTaskRepo, *memAccountRepo) {
	tasks := newMemTaskRepo()
	accounts := newMemAccountRepo()
	// nil cache: caching is orthogonal to the ownership rules under test
	return NewTaskService(tasks, accounts, nil, 4), tasks, accounts
}

func TestCreateRecordsOwnership(t *testing.T) {
	t.Parallel()

	svc, _, accounts := newTaskService()
	ctx := context.Background()
	ann := uuid.New()

	task, err := svc.Create(ctx, ann, "  Homework  ", "Math", 5, false)
	require.NoError(t, err)
	assert.Equal(t, "Homework", task.Title)
	assert.Equal(t, ann, task.CreatorID)
	assert.False(t, task.Completed)

	owned, err := accounts.ListOwnedTaskIDs(ctx, ann)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{task.ID}, owned)
}

func TestGetByIDMissingIsNotFoundForAnyPrincipal(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTaskService()
	ctx := context.Background()

	// Existence is checked before ownership: the owner and a stranger get
	// the same answer for a task that does not exist.
	_, err := svc.GetByID(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutationsByNonOwnerForbidden(t *testing.T) {
	t.Parallel()

	svc, tasks, _ := newTaskService()
	ctx := context.Background()
	ann := uuid.New()
	bob := uuid.New()

	task, err := svc.Create(ctx, ann, "Homework", "Math", 5, false)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, bob, task.ID, "Hijacked", "None", 1, true)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ToggleComplete(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Failed checks leave the task untouched.
	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Homework", got.Title)
	assert.False(t, got.Completed)
}

func TestUpdateByOwner(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTaskService()
	ctx := context.Background()
	ann := uuid.New()

	task, err := svc.Create(ctx, ann, "Homework", "Math", 5, false)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ann, task.ID, "Homework v2", "Physics", 2, true)
	require.NoError(t, err)
	assert.Equal(t, "Homework v2", updated.Title)
	assert.Equal(t, "Physics", updated.Subject)
	assert.Equal(t, 2, updated.Priority)
	assert.True(t, updated.Completed)
	assert.Equal(t, ann, updated.CreatorID)
}

func TestToggleCompleteFlips(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTaskService()
	ctx := context.Background()
	ann := uuid.New()

	task, err := svc.Create(ctx, ann, "Homework", "Math", 5, false)
	require.NoError(t, err)

	toggled, err := svc.ToggleComplete(ctx, ann, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleComplete(ctx, ann, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestDeleteByOwnerRemovesTaskAndMirror(t *testing.T) {
	t.Parallel()

	svc, _, accounts := newTaskService()
	ctx := context.Background()
	ann := uuid.New()

	task, err := svc.Create(ctx, ann, "Homework", "Math", 5, false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ann, task.ID))

	_, err = svc.GetByID(ctx, ann, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := accounts.ListOwnedTaskIDs(ctx, ann)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestListIsCreatorScopedAndPaginated(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTaskService()
	ctx := context.Background()
	ann := uuid.New()
	bob := uuid.New()

	for i := 0; i < 6; i++ {
		_, err := svc.Create(ctx, ann, "Ann task", "Math", 5, false)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, bob, "Bob task", "Art", 3, false)
	require.NoError(t, err)

	page1, total, err := svc.List(ctx, ann, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, page1, 4)
	for _, task := range page1 {
		assert.Equal(t, ann, task.CreatorID)
	}

	page2, total, err := svc.List(ctx, ann, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, page2, 2)

	empty, total, err := svc.List(ctx, ann, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Empty(t, empty)
}
