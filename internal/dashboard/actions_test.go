package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apiclient"
)

func findTask(tasks []apiclient.Task, id int64) *apiclient.Task {
	for i := range tasks {
		if tasks[i].Id == id {
			return &tasks[i]
		}
	}
	return nil
}

func TestAddAppendsServerRow(t *testing.T) {
	v, api := loadedView(t)
	ctx := context.Background()

	require.NoError(t, v.Add(ctx, apiclient.NewTask{Title: "New thing"}))
	assert.Len(t, v.Tasks(), 6)
	assert.NotNil(t, findTask(v.Tasks(), 6))
	assert.Len(t, api.tasks, 6)
}

func TestAddRejectsBlankTitleLocally(t *testing.T) {
	v, api := loadedView(t)

	err := v.Add(context.Background(), apiclient.NewTask{Title: "   "})
	assert.Error(t, err)
	// Never reached the server.
	assert.Len(t, api.tasks, 5)
}

func TestToggleCompletedReconcilesWithServerRow(t *testing.T) {
	v, api := loadedView(t)
	ctx := context.Background()

	require.NoError(t, v.ToggleCompleted(ctx, 1))

	assert.True(t, findTask(v.Tasks(), 1).Completed)
	assert.True(t, findTask(api.tasks, 1).Completed)

	require.NoError(t, v.ToggleCompleted(ctx, 1))
	assert.False(t, findTask(v.Tasks(), 1).Completed)
}

func TestToggleCompletedFailureReloads(t *testing.T) {
	v, api := loadedView(t)
	api.failUpdate = true
	listCallsBefore := api.listCalls

	err := v.ToggleCompleted(context.Background(), 1)
	assert.Error(t, err)

	// Rolled back by refetching the authoritative list.
	assert.Equal(t, listCallsBefore+1, api.listCalls)
	assert.False(t, findTask(v.Tasks(), 1).Completed)
}

func TestSaveTitle(t *testing.T) {
	v, api := loadedView(t)

	require.NoError(t, v.SaveTitle(context.Background(), 1, "  Buy oat milk  "))
	assert.Equal(t, "Buy oat milk", findTask(v.Tasks(), 1).Title)
	assert.Equal(t, "Buy oat milk", findTask(api.tasks, 1).Title)
}

func TestSaveTitleRejectsBlank(t *testing.T) {
	v, _ := loadedView(t)

	assert.Error(t, v.SaveTitle(context.Background(), 1, "   "))
	assert.Equal(t, "Buy milk", findTask(v.Tasks(), 1).Title)
}

func TestDeleteRemovesLocally(t *testing.T) {
	v, api := loadedView(t)

	v.ToggleSelect(2)
	require.NoError(t, v.Delete(context.Background(), 2))

	assert.Nil(t, findTask(v.Tasks(), 2))
	assert.Nil(t, findTask(api.tasks, 2))
	assert.Empty(t, v.SelectedIds())
}

func TestDeleteFailureReloads(t *testing.T) {
	v, api := loadedView(t)
	api.failDelete = true
	listCallsBefore := api.listCalls

	err := v.Delete(context.Background(), 2)
	assert.Error(t, err)
	assert.Equal(t, listCallsBefore+1, api.listCalls)
	// Back after the resync.
	assert.NotNil(t, findTask(v.Tasks(), 2))
}

func TestBulkDeleteRemovesSelected(t *testing.T) {
	v, api := loadedView(t)

	v.ToggleSelect(1)
	v.ToggleSelect(3)
	require.NoError(t, v.BulkDelete(context.Background()))

	assert.Len(t, v.Tasks(), 3)
	assert.Len(t, api.tasks, 3)
	assert.Empty(t, v.SelectedIds())
}

func TestBulkDeleteWithNoSelectionIsANoop(t *testing.T) {
	v, api := loadedView(t)

	require.NoError(t, v.BulkDelete(context.Background()))
	assert.Len(t, v.Tasks(), 5)
	assert.Len(t, api.tasks, 5)
}

func TestBulkDeletePartialFailureResyncs(t *testing.T) {
	v, api := loadedView(t)
	listCallsBefore := api.listCalls

	// Select a task the server no longer has.
	api.tasks = api.tasks[1:]
	v.ToggleSelect(1)
	v.ToggleSelect(2)

	err := v.BulkDelete(context.Background())
	assert.Error(t, err)
	assert.Equal(t, listCallsBefore+1, api.listCalls)

	// The view matches the server's surviving rows exactly.
	assert.Len(t, v.Tasks(), len(api.tasks))
	assert.Empty(t, v.SelectedIds())
}
